package designs

import (
	"context"
	"strings"

	"github.com/angelmondragon/invitation-backend/internal/repo"
	"github.com/angelmondragon/invitation-backend/pkg/db/models"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
	"github.com/angelmondragon/invitation-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Filter narrows a catalog listing. Zero fields match everything.
type Filter struct {
	Collection enums.DesignCollection
	Style      enums.DesignStyle
	Theme      enums.DesignTheme
	Color      enums.DesignTone
}

// Repository encapsulates design catalog persistence.
type Repository struct {
	repo.Base
}

// NewRepository constructs a design repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// List returns one page of designs ordered by collection position.
func (r *Repository) List(ctx context.Context, filter Filter, cursor string, limit int) (DesignsPageDTO, error) {
	query := r.DB(ctx).Model(&models.Design{})
	if filter.Collection != "" {
		query = query.Where("collection = ?", filter.Collection)
	}
	if filter.Style != "" {
		query = query.Where("style = ?", filter.Style)
	}
	if filter.Theme != "" {
		query = query.Where("theme = ?", filter.Theme)
	}
	if filter.Color != "" {
		query = query.Where("color = ?", filter.Color)
	}

	rows, next, err := repo.KeysetPage(query, strings.TrimSpace(cursor), limit, func(d models.Design) pagination.Cursor {
		return pagination.Cursor{Position: d.Position, ID: d.ID}
	})
	if err != nil {
		return DesignsPageDTO{}, err
	}

	items := make([]DesignDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDTO(row))
	}
	return DesignsPageDTO{Items: items, NextCursor: next}, nil
}

// FindByID loads a single design.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Design, error) {
	var design models.Design
	if err := r.DB(ctx).Where("id = ?", id).First(&design).Error; err != nil {
		return nil, err
	}
	return &design, nil
}
