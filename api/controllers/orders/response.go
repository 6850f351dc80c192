package orders

import (
	"github.com/angelmondragon/invitation-backend/internal/order"
	"github.com/angelmondragon/invitation-backend/internal/pricing"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
)

type quantityView struct {
	Preset       int64  `json:"preset"`
	Custom       string `json:"custom"`
	PresetActive bool   `json:"preset_active"`
	Effective    int64  `json:"effective"`
}

type quoteResponse struct {
	State      enums.OrderFlowState   `json:"state"`
	Design     *order.DesignSelection `json:"design,omitempty"`
	Quantity   quantityView           `json:"quantity"`
	Options    pricing.OptionSet      `json:"options"`
	Breakdown  pricing.Breakdown      `json:"breakdown"`
	TotalLabel string                 `json:"total_label"`
	Readiness  order.Readiness        `json:"readiness"`
}

func newQuoteResponse(q order.QuoteResult) quoteResponse {
	return quoteResponse{
		State:  q.State,
		Design: q.Design,
		Quantity: quantityView{
			Preset:       q.Quantity.Preset,
			Custom:       q.Quantity.Custom,
			PresetActive: q.Quantity.PresetActive(),
			Effective:    q.Effective,
		},
		Options:    q.Options,
		Breakdown:  q.Breakdown,
		TotalLabel: q.Breakdown.Label(),
		Readiness:  q.Readiness,
	}
}

type submitResponse struct {
	Receipt    order.Receipt  `json:"receipt"`
	Order      order.Snapshot `json:"order"`
	TotalLabel string         `json:"total_label"`
}

type pricingResponse struct {
	Presets    []int64        `json:"presets"`
	Default    int64          `json:"default_preset"`
	Tiers      []pricing.Tier `json:"tiers"`
	Surcharges []pricing.Rate `json:"surcharges"`
	Envelopes  []envelopeView `json:"envelopes"`
}

type envelopeView struct {
	Code  enums.Envelope `json:"code"`
	Label string         `json:"label"`
}
