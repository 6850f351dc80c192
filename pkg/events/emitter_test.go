package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/invitation-backend/pkg/logger"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, msg *gcppubsub.Message) PublishResult {
	args := m.Called(ctx, msg)
	if r := args.Get(0); r != nil {
		return r.(PublishResult)
	}
	return nil
}

type fixedResult struct {
	id  string
	err error
}

func (r fixedResult) Get(context.Context) (string, error) {
	return r.id, r.err
}

func TestPubSubEmitterPublishesEnvelope(t *testing.T) {
	pub := &mockPublisher{}
	emitter, err := NewPubSubEmitter(pub, "invite-api")
	require.NoError(t, err)
	fixed := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	emitter.now = func() time.Time { return fixed }

	var sent *gcppubsub.Message
	pub.On("Publish", mock.Anything, mock.AnythingOfType("*pubsub.Message")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*gcppubsub.Message) }).
		Return(fixedResult{id: "msg-1"})

	out, err := emitter.Emit(context.Background(), EventOrderSubmitted, map[string]any{"quantity": 150})
	require.NoError(t, err)
	pub.AssertExpectations(t)

	assert.Equal(t, "msg-1", out.MessageID)
	assert.Equal(t, "pubsub", out.Emitter)
	assert.True(t, out.At.Equal(fixed))
	require.NotNil(t, sent)
	assert.Equal(t, string(EventOrderSubmitted), sent.Attributes["event_type"])
	assert.Equal(t, out.EventID, sent.Attributes["event_id"])

	var envelope Envelope
	require.NoError(t, json.Unmarshal(sent.Data, &envelope))
	assert.Equal(t, EnvelopeVersion, envelope.Version)
	assert.Equal(t, "invite-api", envelope.Source)
	assert.JSONEq(t, `{"quantity":150}`, string(envelope.Data))
}

func TestPubSubEmitterSurfacesPublishError(t *testing.T) {
	pub := &mockPublisher{}
	emitter, err := NewPubSubEmitter(pub, "invite-api")
	require.NoError(t, err)

	pub.On("Publish", mock.Anything, mock.Anything).Return(fixedResult{err: errors.New("deadline exceeded")})

	_, err = emitter.Emit(context.Background(), EventInquiryReceived, map[string]string{"name": "kim"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadline exceeded")
}

func TestPubSubEmitterNilResult(t *testing.T) {
	pub := &mockPublisher{}
	emitter, err := NewPubSubEmitter(pub, "")
	require.NoError(t, err)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	_, err = emitter.Emit(context.Background(), EventOrderSubmitted, struct{}{})
	assert.Error(t, err)
}

func TestPubSubEmitterRejectsUnmarshalablePayload(t *testing.T) {
	pub := &mockPublisher{}
	emitter, err := NewPubSubEmitter(pub, "")
	require.NoError(t, err)

	_, err = emitter.Emit(context.Background(), EventOrderSubmitted, map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNewEmittersRequireDependencies(t *testing.T) {
	_, err := NewPubSubEmitter(nil, "")
	assert.Error(t, err)
	_, err = NewLogEmitter(nil, "")
	assert.Error(t, err)
	assert.Nil(t, NewGCPPublisher(nil))
}

func TestLogEmitterWritesEvent(t *testing.T) {
	buf := &bytes.Buffer{}
	emitter, err := NewLogEmitter(logger.New(logger.Options{ServiceName: "test", Output: buf}), "invite-api")
	require.NoError(t, err)

	out, err := emitter.Emit(context.Background(), EventOrderSubmitted, map[string]int{"total": 105000})
	require.NoError(t, err)
	assert.Equal(t, "log", out.Emitter)
	assert.Empty(t, out.MessageID)
	assert.Contains(t, buf.String(), "event.emitted")
	assert.Contains(t, buf.String(), out.EventID)
}
