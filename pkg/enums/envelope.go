package enums

import (
	"fmt"
	"strings"
)

// Envelope is the exclusive envelope choice on an invitation order.
// EnvelopeNone is the initial state and is never picked explicitly by the buyer.
type Envelope string

const (
	EnvelopeNone    Envelope = "none"
	EnvelopeBasic   Envelope = "basic"
	EnvelopePremium Envelope = "premium"
)

var validEnvelopes = []Envelope{
	EnvelopeNone,
	EnvelopeBasic,
	EnvelopePremium,
}

var envelopeLabels = map[Envelope]string{
	EnvelopeNone:    "선택 안 함",
	EnvelopeBasic:   "기본",
	EnvelopePremium: "고급",
}

// String implements fmt.Stringer.
func (e Envelope) String() string {
	return string(e)
}

// IsValid reports whether the value is a known Envelope.
func (e Envelope) IsValid() bool {
	for _, candidate := range validEnvelopes {
		if candidate == e {
			return true
		}
	}
	return false
}

// IsSelectable reports whether the buyer may choose the value directly.
func (e Envelope) IsSelectable() bool {
	return e == EnvelopeBasic || e == EnvelopePremium
}

// Label returns the storefront label.
func (e Envelope) Label() string {
	return envelopeLabels[e]
}

// ParseEnvelope converts raw input into an Envelope. Blank input maps to
// EnvelopeNone and the storefront labels (기본, 고급) are accepted.
func ParseEnvelope(value string) (Envelope, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return EnvelopeNone, nil
	}
	for _, candidate := range validEnvelopes {
		if string(candidate) == normalized || envelopeLabels[candidate] == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid envelope %q", value)
}

// Envelopes returns every envelope option in display order.
func Envelopes() []Envelope {
	return append([]Envelope(nil), validEnvelopes...)
}
