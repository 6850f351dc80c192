package enums

import (
	"fmt"
	"strings"
)

// EventDetailField names one free-form field of the wedding event details.
type EventDetailField string

const (
	EventDetailGroomName EventDetailField = "groom_name"
	EventDetailBrideName EventDetailField = "bride_name"
	EventDetailDate      EventDetailField = "date"
	EventDetailTime      EventDetailField = "time"
	EventDetailPlace     EventDetailField = "place"
	EventDetailMessage   EventDetailField = "message"
	EventDetailContact   EventDetailField = "contact"
	EventDetailAddress   EventDetailField = "address"
)

var validEventDetailFields = []EventDetailField{
	EventDetailGroomName,
	EventDetailBrideName,
	EventDetailDate,
	EventDetailTime,
	EventDetailPlace,
	EventDetailMessage,
	EventDetailContact,
	EventDetailAddress,
}

// String implements fmt.Stringer.
func (f EventDetailField) String() string {
	return string(f)
}

// IsValid reports whether the value is a known EventDetailField.
func (f EventDetailField) IsValid() bool {
	for _, candidate := range validEventDetailFields {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseEventDetailField converts raw input into an EventDetailField.
func ParseEventDetailField(value string) (EventDetailField, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validEventDetailFields {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid event detail field %q", value)
}
