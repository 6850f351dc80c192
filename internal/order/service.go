package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/invitation-backend/internal/pricing"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
	"github.com/angelmondragon/invitation-backend/pkg/metrics"
)

// DesignResolver turns a catalog design id into a DesignSelection.
type DesignResolver interface {
	Selection(ctx context.Context, designID string) (DesignSelection, error)
}

// Service prices and submits order configurations sent by the storefront.
type Service interface {
	Quote(ctx context.Context, input Input) (QuoteResult, error)
	Submit(ctx context.Context, input Input) (SubmitResult, error)
}

// Input is a complete order configuration. Exactly one of DesignID and Design
// may be set; neither leaves the flow without a design.
type Input struct {
	DesignID       string
	Design         *DesignSelection
	Preset         int64
	CustomQuantity string
	Envelope       enums.Envelope
	Sticker        bool
	MealTicket     bool
	Map            bool
	Mobile         bool
	Details        EventDetails
	GalleryConsent bool
}

// QuoteResult is the live view of a configuration.
type QuoteResult struct {
	State     enums.OrderFlowState
	Design    *DesignSelection
	Quantity  QuantitySelection
	Effective int64
	Options   pricing.OptionSet
	Breakdown pricing.Breakdown
	Readiness Readiness
}

// SubmitResult pairs the accepted snapshot with the sink receipt.
type SubmitResult struct {
	Snapshot Snapshot
	Receipt  Receipt
}

type service struct {
	designs DesignResolver
	sink    SubmissionSink
	policy  Policy
	metrics *metrics.OrderMetrics
	logg    *logger.Logger
}

// NewService builds the order service with the required dependencies.
func NewService(designs DesignResolver, sink SubmissionSink, policy Policy, m *metrics.OrderMetrics, logg *logger.Logger) (Service, error) {
	if designs == nil {
		return nil, fmt.Errorf("design resolver required")
	}
	if sink == nil {
		return nil, fmt.Errorf("submission sink required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		designs: designs,
		sink:    sink,
		policy:  policy,
		metrics: m,
		logg:    logg,
	}, nil
}

func (s *service) Quote(ctx context.Context, input Input) (QuoteResult, error) {
	c, err := s.configure(ctx, input)
	if err != nil {
		return QuoteResult{}, err
	}
	result := QuoteResult{
		State:     c.State(),
		Quantity:  c.Quantity(),
		Effective: c.EffectiveQuantity(),
		Options:   c.Options(),
		Breakdown: c.Quote(),
		Readiness: c.Readiness(),
	}
	if d, ok := c.Design(); ok {
		result.Design = &d
	}
	return result, nil
}

func (s *service) Submit(ctx context.Context, input Input) (SubmitResult, error) {
	c, err := s.configure(ctx, input)
	if err != nil {
		return SubmitResult{}, err
	}

	if readiness := c.Readiness(); !readiness.Ready {
		reasons := make([]string, 0, len(readiness.Reasons))
		for _, r := range readiness.Reasons {
			reasons = append(reasons, string(r))
		}
		s.metrics.IncBlocked(reasons...)
		logCtx := s.logg.WithField(ctx, "reasons", strings.Join(reasons, ","))
		s.logg.Warn(logCtx, "order.submit_blocked")
	}

	snapshot, receipt, err := c.Submit(ctx, s.sink)
	if err != nil {
		if pkgerrors.As(err) != nil {
			return SubmitResult{}, err
		}
		logCtx := s.logg.WithOrderRef(ctx, snapshot.Reference.String())
		s.logg.Error(logCtx, "order.submit_failed", err)
		return SubmitResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "order submission failed")
	}

	s.metrics.IncSubmitted(receipt.Sink, snapshot.TotalCost)
	logCtx := s.logg.WithOrderRef(ctx, snapshot.Reference.String())
	logCtx = s.logg.WithFields(logCtx, map[string]any{
		"design_name": snapshot.Design.Name,
		"quantity":    snapshot.Quantity,
		"total_cost":  snapshot.TotalCost,
		"sink":        receipt.Sink,
	})
	s.logg.Info(logCtx, "order.submitted")

	return SubmitResult{Snapshot: snapshot, Receipt: receipt}, nil
}

// configure replays input onto a fresh Configurator.
func (s *service) configure(ctx context.Context, input Input) (*Configurator, error) {
	design, err := s.resolveDesign(ctx, input)
	if err != nil {
		return nil, err
	}

	c := NewConfigurator(design, s.policy)
	if input.Preset != 0 {
		if err := c.SelectPreset(input.Preset); err != nil {
			return nil, err
		}
	}
	if input.CustomQuantity != "" {
		c.EnterCustomQuantity(input.CustomQuantity)
	}
	if input.Envelope != "" && input.Envelope != enums.EnvelopeNone {
		if err := c.SelectEnvelope(input.Envelope); err != nil {
			return nil, err
		}
	}
	c.options.Sticker = input.Sticker
	c.options.MealTicket = input.MealTicket
	c.options.Map = input.Map
	c.options.Mobile = input.Mobile
	c.details = input.Details
	c.SetConsent(input.GalleryConsent)
	return c, nil
}

func (s *service) resolveDesign(ctx context.Context, input Input) (*DesignSelection, error) {
	id := strings.TrimSpace(input.DesignID)
	switch {
	case id != "" && input.Design != nil:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "provide either design_id or design, not both")
	case id != "":
		d, err := s.designs.Selection(ctx, id)
		if err != nil {
			return nil, err
		}
		return &d, nil
	case input.Design != nil:
		d, err := NewDesignSelection(input.Design.SourceID, input.Design.Name, input.Design.PrimaryImageRef, input.Design.FormatImageRefs...)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}
	return nil, nil
}
