package designs

import (
	"github.com/angelmondragon/invitation-backend/pkg/db/models"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
	"github.com/angelmondragon/invitation-backend/pkg/types"
)

// DesignDTO is the catalog card returned to the storefront.
type DesignDTO struct {
	ID         string                 `json:"id"`
	Collection enums.DesignCollection `json:"collection"`
	Name       string                 `json:"name"`
	ImageURL   string                 `json:"image_url"`
	Style      enums.DesignStyle      `json:"style"`
	Theme      enums.DesignTheme      `json:"theme"`
	Color      enums.DesignTone       `json:"color"`
}

// DesignsPageDTO is one page of catalog designs.
type DesignsPageDTO = types.Page[DesignDTO]

// FilterOptionsDTO lists the values the storefront filter dropdowns offer.
type FilterOptionsDTO struct {
	Style []enums.DesignStyle `json:"style"`
	Theme []enums.DesignTheme `json:"theme"`
	Color []enums.DesignTone  `json:"color"`
}

func toDTO(m models.Design) DesignDTO {
	return DesignDTO{
		ID:         m.ID,
		Collection: m.Collection,
		Name:       m.Name,
		ImageURL:   m.ImageURL,
		Style:      m.Style,
		Theme:      m.Theme,
		Color:      m.Color,
	}
}
