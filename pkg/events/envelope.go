package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const EnvelopeVersion = 1

// EventType names a published event.
type EventType string

const (
	EventOrderSubmitted  EventType = "invite.order.submitted"
	EventInquiryReceived EventType = "invite.inquiry.received"
)

// Envelope is the stable payload structure published to subscribers.
type Envelope struct {
	Version    int             `json:"version"`
	EventID    string          `json:"eventId"`
	EventType  EventType       `json:"eventType"`
	OccurredAt time.Time       `json:"occurredAt"`
	Source     string          `json:"source,omitempty"`
	Data       json.RawMessage `json:"data"`
}

// NewEnvelope marshals data into a versioned envelope.
func NewEnvelope(eventType EventType, source string, data any, occurredAt time.Time) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Envelope{
		Version:    EnvelopeVersion,
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: occurredAt.UTC(),
		Source:     source,
		Data:       raw,
	}, nil
}

// Attributes are copied onto the transport message for filtering.
func (e Envelope) Attributes() map[string]string {
	return map[string]string{
		"event_id":    e.EventID,
		"event_type":  string(e.EventType),
		"occurred_at": e.OccurredAt.Format(time.RFC3339Nano),
		"version":     fmt.Sprintf("%d", e.Version),
	}
}
