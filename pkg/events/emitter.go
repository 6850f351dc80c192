package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"

	"github.com/angelmondragon/invitation-backend/pkg/logger"
)

const defaultPublishTimeout = 15 * time.Second

// Emitted identifies a delivered event.
type Emitted struct {
	EventID   string
	MessageID string
	Emitter   string
	At        time.Time
}

// Emitter delivers domain events to downstream consumers.
type Emitter interface {
	Emit(ctx context.Context, eventType EventType, data any) (Emitted, error)
}

// Publisher is the subset of *pubsub.Publisher the emitter needs.
type Publisher interface {
	Publish(context.Context, *gcppubsub.Message) PublishResult
}

type PublishResult interface {
	Get(context.Context) (string, error)
}

// PubSubEmitter publishes envelopes to a single topic.
type PubSubEmitter struct {
	pub     Publisher
	source  string
	timeout time.Duration
	now     func() time.Time
}

// NewPubSubEmitter wraps a topic publisher.
func NewPubSubEmitter(pub Publisher, source string) (*PubSubEmitter, error) {
	if pub == nil {
		return nil, fmt.Errorf("publisher required")
	}
	return &PubSubEmitter{
		pub:     pub,
		source:  strings.TrimSpace(source),
		timeout: defaultPublishTimeout,
		now:     time.Now,
	}, nil
}

func (e *PubSubEmitter) Emit(ctx context.Context, eventType EventType, data any) (Emitted, error) {
	envelope, err := NewEnvelope(eventType, e.source, data, e.now())
	if err != nil {
		return Emitted{}, err
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return Emitted{}, fmt.Errorf("marshal envelope: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	result := e.pub.Publish(publishCtx, &gcppubsub.Message{
		Data:       payload,
		Attributes: envelope.Attributes(),
	})
	if result == nil {
		return Emitted{}, fmt.Errorf("publisher returned nil for %s", eventType)
	}
	id, err := result.Get(publishCtx)
	if err != nil {
		return Emitted{}, fmt.Errorf("publish %s: %w", eventType, err)
	}
	return Emitted{EventID: envelope.EventID, MessageID: id, Emitter: "pubsub", At: envelope.OccurredAt}, nil
}

// NewGCPPublisher adapts a Pub/Sub v2 publisher handle.
func NewGCPPublisher(p *gcppubsub.Publisher) Publisher {
	if p == nil {
		return nil
	}
	return &gcpPublisher{Publisher: p}
}

type gcpPublisher struct {
	*gcppubsub.Publisher
}

func (p *gcpPublisher) Publish(ctx context.Context, msg *gcppubsub.Message) PublishResult {
	return p.Publisher.Publish(ctx, msg)
}

// LogEmitter writes events to the structured log. It backs local development.
type LogEmitter struct {
	logg   *logger.Logger
	source string
	now    func() time.Time
}

func NewLogEmitter(logg *logger.Logger, source string) (*LogEmitter, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &LogEmitter{logg: logg, source: source, now: time.Now}, nil
}

func (e *LogEmitter) Emit(ctx context.Context, eventType EventType, data any) (Emitted, error) {
	envelope, err := NewEnvelope(eventType, e.source, data, e.now())
	if err != nil {
		return Emitted{}, err
	}
	logCtx := e.logg.WithFields(ctx, map[string]any{
		"event_id":   envelope.EventID,
		"event_type": string(envelope.EventType),
		"payload":    envelope.Data,
	})
	e.logg.Info(logCtx, "event.emitted")
	return Emitted{EventID: envelope.EventID, Emitter: "log", At: envelope.OccurredAt}, nil
}
