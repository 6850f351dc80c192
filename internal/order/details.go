package order

import (
	"strings"

	"github.com/angelmondragon/invitation-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
)

// EventDetails are the free-form wedding details printed on the invitation.
type EventDetails struct {
	GroomName string `json:"groom_name"`
	BrideName string `json:"bride_name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Place     string `json:"place"`
	Message   string `json:"message"`
	Contact   string `json:"contact"`
	Address   string `json:"address"`
}

// RequiredDetailFields must be filled when the details policy is on.
var RequiredDetailFields = []enums.EventDetailField{
	enums.EventDetailGroomName,
	enums.EventDetailBrideName,
	enums.EventDetailDate,
	enums.EventDetailContact,
	enums.EventDetailAddress,
}

func (d *EventDetails) field(f enums.EventDetailField) *string {
	switch f {
	case enums.EventDetailGroomName:
		return &d.GroomName
	case enums.EventDetailBrideName:
		return &d.BrideName
	case enums.EventDetailDate:
		return &d.Date
	case enums.EventDetailTime:
		return &d.Time
	case enums.EventDetailPlace:
		return &d.Place
	case enums.EventDetailMessage:
		return &d.Message
	case enums.EventDetailContact:
		return &d.Contact
	case enums.EventDetailAddress:
		return &d.Address
	}
	return nil
}

// Set writes one field verbatim.
func (d *EventDetails) Set(f enums.EventDetailField, value string) error {
	ptr := d.field(f)
	if ptr == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown event detail field").WithDetails(map[string]any{"field": string(f)})
	}
	*ptr = value
	return nil
}

// Get reads one field; unknown fields read as empty.
func (d EventDetails) Get(f enums.EventDetailField) string {
	if ptr := d.field(f); ptr != nil {
		return *ptr
	}
	return ""
}

// Missing lists the given fields that are blank.
func (d EventDetails) Missing(fields []enums.EventDetailField) []enums.EventDetailField {
	var missing []enums.EventDetailField
	for _, f := range fields {
		if strings.TrimSpace(d.Get(f)) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
