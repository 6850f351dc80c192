package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/invitation-backend/internal/pricing"
)

// Snapshot is the finalized order handed to a SubmissionSink.
type Snapshot struct {
	Reference      uuid.UUID         `json:"reference"`
	Design         DesignSelection   `json:"design"`
	Quantity       int64             `json:"quantity"`
	Options        pricing.OptionSet `json:"options"`
	Details        EventDetails      `json:"details"`
	GalleryConsent bool              `json:"gallery_consent"`
	TotalCost      int64             `json:"total_cost"`
	CreatedAt      time.Time         `json:"created_at"`
}

// Receipt acknowledges that a sink accepted a snapshot.
type Receipt struct {
	Reference  uuid.UUID `json:"reference"`
	Sink       string    `json:"sink"`
	MessageID  string    `json:"message_id,omitempty"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// SubmissionSink receives snapshots that passed the readiness gate.
type SubmissionSink interface {
	Submit(ctx context.Context, snapshot Snapshot) (Receipt, error)
}
