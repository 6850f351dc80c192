package support

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/angelmondragon/invitation-backend/pkg/events"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
)

// Inquiry is a 1:1 question sent from the contact form.
type Inquiry struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// InquiryReceipt acknowledges an accepted inquiry.
type InquiryReceipt struct {
	EventID    string    `json:"event_id"`
	MessageID  string    `json:"message_id,omitempty"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// Service serves the customer center.
type Service interface {
	FAQs() []FAQ
	Channels() []Channel
	SubmitInquiry(ctx context.Context, inquiry Inquiry) (InquiryReceipt, error)
}

type service struct {
	emitter  events.Emitter
	validate *validator.Validate
	logg     *logger.Logger
}

// NewService builds the customer center service.
func NewService(emitter events.Emitter, logg *logger.Logger) (Service, error) {
	if emitter == nil {
		return nil, fmt.Errorf("event emitter required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{emitter: emitter, validate: validator.New(), logg: logg}, nil
}

func (s *service) FAQs() []FAQ {
	return append([]FAQ(nil), faqs...)
}

func (s *service) Channels() []Channel {
	return append([]Channel(nil), channels...)
}

func (s *service) SubmitInquiry(ctx context.Context, inquiry Inquiry) (InquiryReceipt, error) {
	inquiry = Inquiry{
		Name:    strings.TrimSpace(inquiry.Name),
		Email:   strings.TrimSpace(inquiry.Email),
		Subject: strings.TrimSpace(inquiry.Subject),
		Message: strings.TrimSpace(inquiry.Message),
	}
	if err := s.validate.Struct(inquiry); err != nil {
		return InquiryReceipt{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid inquiry").WithDetails(fieldErrors(err))
	}

	emitted, err := s.emitter.Emit(ctx, events.EventInquiryReceived, inquiry)
	if err != nil {
		s.logg.Error(ctx, "support.inquiry_failed", err)
		return InquiryReceipt{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "inquiry could not be delivered")
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{"event_id": emitted.EventID, "subject": inquiry.Subject})
	s.logg.Info(logCtx, "support.inquiry_received")
	return InquiryReceipt{EventID: emitted.EventID, MessageID: emitted.MessageID, AcceptedAt: emitted.At}, nil
}

func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return out
}
