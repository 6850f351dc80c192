package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/invitation-backend/internal/order"
	"github.com/angelmondragon/invitation-backend/internal/pricing"
	"github.com/angelmondragon/invitation-backend/pkg/events"
	"github.com/angelmondragon/invitation-backend/pkg/types"
)

// OrderSubmitted is the payload published for an accepted order.
type OrderSubmitted struct {
	Reference      string                `json:"reference"`
	Design         order.DesignSelection `json:"design"`
	Quantity       int64                 `json:"quantity"`
	Options        pricing.OptionSet     `json:"options"`
	TotalLabel     string                `json:"total_label"`
	Details        order.EventDetails    `json:"details"`
	GalleryConsent bool                  `json:"gallery_consent"`
	TotalCost      int64                 `json:"total_cost"`
	CreatedAt      time.Time             `json:"created_at"`
}

// Sink forwards accepted order snapshots to an event emitter.
type Sink struct {
	emitter events.Emitter
}

var _ order.SubmissionSink = (*Sink)(nil)

// NewSink builds a SubmissionSink on top of emitter.
func NewSink(emitter events.Emitter) (*Sink, error) {
	if emitter == nil {
		return nil, fmt.Errorf("event emitter required")
	}
	return &Sink{emitter: emitter}, nil
}

func (s *Sink) Submit(ctx context.Context, snapshot order.Snapshot) (order.Receipt, error) {
	payload := OrderSubmitted{
		Reference:      snapshot.Reference.String(),
		Design:         snapshot.Design,
		Quantity:       snapshot.Quantity,
		Options:        snapshot.Options,
		Details:        snapshot.Details,
		GalleryConsent: snapshot.GalleryConsent,
		TotalCost:      snapshot.TotalCost,
		TotalLabel:     types.FormatKRW(snapshot.TotalCost),
		CreatedAt:      snapshot.CreatedAt,
	}
	emitted, err := s.emitter.Emit(ctx, events.EventOrderSubmitted, payload)
	if err != nil {
		return order.Receipt{}, fmt.Errorf("emit order %s: %w", snapshot.Reference, err)
	}
	return order.Receipt{
		Reference:  snapshot.Reference,
		Sink:       emitted.Emitter,
		MessageID:  emitted.MessageID,
		AcceptedAt: emitted.At,
	}, nil
}
