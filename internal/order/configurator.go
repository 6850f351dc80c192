package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/invitation-backend/internal/pricing"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
)

// BlockReason explains why an order cannot be submitted yet.
type BlockReason string

const (
	ReasonDesignMissing    BlockReason = "design_missing"
	ReasonQuantityZero     BlockReason = "quantity_not_positive"
	ReasonQuantityAboveMax BlockReason = "quantity_above_max"
	ReasonDetailsMissing   BlockReason = "details_missing"
)

// Readiness is the result of the submission gate.
type Readiness struct {
	Ready         bool                     `json:"ready"`
	Reasons       []BlockReason            `json:"reasons"`
	MissingFields []enums.EventDetailField `json:"missing_fields,omitempty"`
	MaxQuantity   int64                    `json:"max_quantity,omitempty"`
}

// Configurator owns one buyer's order configuration. It is not safe for
// concurrent use; build one per request.
type Configurator struct {
	design   *DesignSelection
	policy   Policy
	quantity QuantitySelection
	options  pricing.OptionSet
	details  EventDetails
	consent  bool

	now   func() time.Time
	newID func() uuid.UUID
}

// NewConfigurator opens the order screen. A nil design leaves the flow in
// NoDesignSelected.
func NewConfigurator(design *DesignSelection, policy Policy) *Configurator {
	c := &Configurator{
		policy:   policy,
		quantity: NewQuantitySelection(),
		options:  pricing.DefaultOptions(),
		now:      time.Now,
		newID:    uuid.New,
	}
	if design != nil {
		d := design.clone()
		c.design = &d
	}
	return c
}

// State reports whether a design has been chosen.
func (c *Configurator) State() enums.OrderFlowState {
	if c.design == nil {
		return enums.OrderFlowNoDesignSelected
	}
	return enums.OrderFlowConfiguring
}

// Design returns a copy of the chosen design.
func (c *Configurator) Design() (DesignSelection, bool) {
	if c.design == nil {
		return DesignSelection{}, false
	}
	return c.design.clone(), true
}

// SelectPreset picks one of Presets and clears any custom text.
func (c *Configurator) SelectPreset(v int64) error {
	return c.quantity.SelectPreset(v)
}

// EnterCustomQuantity stores raw text. The preset is kept and wins again once
// the text is cleared.
func (c *Configurator) EnterCustomQuantity(raw string) {
	c.quantity.EnterCustom(raw)
}

// Quantity returns the raw preset and custom selection.
func (c *Configurator) Quantity() QuantitySelection {
	return c.quantity
}

// EffectiveQuantity is the priced quantity: parsed custom text when present,
// otherwise the preset.
func (c *Configurator) EffectiveQuantity() int64 {
	return c.quantity.Effective()
}

// SelectEnvelope picks basic or premium. EnvelopeNone is only the initial state.
func (c *Configurator) SelectEnvelope(e enums.Envelope) error {
	if !e.IsSelectable() {
		return pkgerrors.New(pkgerrors.CodeValidation, "envelope must be basic or premium").WithDetails(map[string]any{"field": "envelope", "value": string(e)})
	}
	c.options.Envelope = e
	return nil
}

// SetFlag toggles one independent add-on.
func (c *Configurator) SetFlag(flag enums.OptionFlag, on bool) error {
	switch flag {
	case enums.OptionFlagSticker:
		c.options.Sticker = on
	case enums.OptionFlagMealTicket:
		c.options.MealTicket = on
	case enums.OptionFlagMap:
		c.options.Map = on
	case enums.OptionFlagMobile:
		c.options.Mobile = on
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown option flag").WithDetails(map[string]any{"field": string(flag)})
	}
	return nil
}

// Options returns the current envelope and add-on selection.
func (c *Configurator) Options() pricing.OptionSet {
	return c.options
}

// SetDetail sets one event detail field. Details never affect the price.
func (c *Configurator) SetDetail(field enums.EventDetailField, value string) error {
	return c.details.Set(field, value)
}

// Details returns a copy of the event details.
func (c *Configurator) Details() EventDetails {
	return c.details
}

// SetConsent records the gallery opt-in. It has no effect on readiness.
func (c *Configurator) SetConsent(on bool) {
	c.consent = on
}

// Consent reports the gallery opt-in.
func (c *Configurator) Consent() bool {
	return c.consent
}

// TotalCost prices the current configuration from scratch.
func (c *Configurator) TotalCost() int64 {
	return pricing.ComputeTotalCost(c.EffectiveQuantity(), c.options)
}

// Quote itemizes TotalCost.
func (c *Configurator) Quote() pricing.Breakdown {
	return pricing.Quote(c.EffectiveQuantity(), c.options)
}

// Readiness evaluates the submission gate and lists every failing check.
func (c *Configurator) Readiness() Readiness {
	r := Readiness{Reasons: []BlockReason{}}
	if c.design == nil {
		r.Reasons = append(r.Reasons, ReasonDesignMissing)
	}
	q := c.EffectiveQuantity()
	if q <= 0 {
		r.Reasons = append(r.Reasons, ReasonQuantityZero)
	}
	if c.policy.Bounded() {
		r.MaxQuantity = c.policy.MaxQuantity
		if q > c.policy.MaxQuantity {
			r.Reasons = append(r.Reasons, ReasonQuantityAboveMax)
		}
	}
	if c.policy.RequireDetailsBeforeSubmit {
		if missing := c.details.Missing(RequiredDetailFields); len(missing) > 0 {
			r.Reasons = append(r.Reasons, ReasonDetailsMissing)
			r.MissingFields = missing
		}
	}
	r.Ready = len(r.Reasons) == 0
	return r
}

// Snapshot packages the configuration for submission. It fails with
// STATE_CONFLICT when the gate is closed.
func (c *Configurator) Snapshot() (Snapshot, error) {
	readiness := c.Readiness()
	if !readiness.Ready {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeStateConflict, "order is not ready for submission").WithDetails(readiness)
	}
	return Snapshot{
		Reference:      c.newID(),
		Design:         c.design.clone(),
		Quantity:       c.EffectiveQuantity(),
		Options:        c.options,
		Details:        c.details,
		GalleryConsent: c.consent,
		TotalCost:      c.TotalCost(),
		CreatedAt:      c.now().UTC(),
	}, nil
}

// Submit checks the gate and hands the snapshot to sink. A closed gate never
// reaches the sink.
func (c *Configurator) Submit(ctx context.Context, sink SubmissionSink) (Snapshot, Receipt, error) {
	if sink == nil {
		return Snapshot{}, Receipt{}, pkgerrors.New(pkgerrors.CodeInternal, "submission sink not configured")
	}
	snapshot, err := c.Snapshot()
	if err != nil {
		return Snapshot{}, Receipt{}, err
	}
	receipt, err := sink.Submit(ctx, snapshot)
	if err != nil {
		return snapshot, Receipt{}, err
	}
	return snapshot, receipt, nil
}
