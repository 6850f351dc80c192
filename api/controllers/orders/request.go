package orders

import (
	"github.com/angelmondragon/invitation-backend/internal/order"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
)

type designPayload struct {
	SourceID        string   `json:"source_id"`
	Name            string   `json:"name"`
	PrimaryImageRef string   `json:"primary_image_ref"`
	FormatImageRefs []string `json:"format_image_refs"`
}

type optionsPayload struct {
	Envelope   string `json:"envelope" validate:"omitempty,max=16"`
	Sticker    bool   `json:"sticker"`
	MealTicket bool   `json:"meal_ticket"`
	Map        bool   `json:"map"`
	Mobile     bool   `json:"mobile"`
}

type quantityPayload struct {
	Preset int64  `json:"preset" validate:"gte=0"`
	Custom string `json:"custom" validate:"max=32"`
}

// orderRequest is the body shared by quote and submit.
type orderRequest struct {
	DesignID       string             `json:"design_id" validate:"max=64"`
	Design         *designPayload     `json:"design"`
	Quantity       quantityPayload    `json:"quantity"`
	Options        optionsPayload     `json:"options"`
	Details        order.EventDetails `json:"details"`
	GalleryConsent bool               `json:"gallery_consent"`
}

func (req orderRequest) toInput() (order.Input, error) {
	input := order.Input{
		DesignID:       req.DesignID,
		Preset:         req.Quantity.Preset,
		CustomQuantity: req.Quantity.Custom,
		Sticker:        req.Options.Sticker,
		MealTicket:     req.Options.MealTicket,
		Map:            req.Options.Map,
		Mobile:         req.Options.Mobile,
		Details:        req.Details,
		GalleryConsent: req.GalleryConsent,
	}
	if req.Options.Envelope != "" {
		envelope, err := enums.ParseEnvelope(req.Options.Envelope)
		if err != nil {
			return order.Input{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid envelope").WithDetails(map[string]any{"field": "options.envelope"})
		}
		input.Envelope = envelope
	}
	if req.Design != nil {
		input.Design = &order.DesignSelection{
			SourceID:        req.Design.SourceID,
			Name:            req.Design.Name,
			PrimaryImageRef: req.Design.PrimaryImageRef,
			FormatImageRefs: req.Design.FormatImageRefs,
		}
	}
	return input, nil
}
