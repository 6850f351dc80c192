package enums

import (
	"fmt"
	"strings"
)

// OptionFlag names an independent add-on toggle on an order.
type OptionFlag string

const (
	OptionFlagSticker    OptionFlag = "sticker"
	OptionFlagMealTicket OptionFlag = "meal_ticket"
	OptionFlagMap        OptionFlag = "map"
	OptionFlagMobile     OptionFlag = "mobile"
)

var validOptionFlags = []OptionFlag{
	OptionFlagSticker,
	OptionFlagMealTicket,
	OptionFlagMap,
	OptionFlagMobile,
}

// String implements fmt.Stringer.
func (f OptionFlag) String() string {
	return string(f)
}

// IsValid reports whether the value is a known OptionFlag.
func (f OptionFlag) IsValid() bool {
	for _, candidate := range validOptionFlags {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseOptionFlag converts raw input into an OptionFlag.
func ParseOptionFlag(value string) (OptionFlag, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validOptionFlags {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid option flag %q", value)
}

// SurchargeCode identifies a priced add-on in a quote breakdown.
type SurchargeCode string

const (
	SurchargePremiumEnvelope SurchargeCode = "premium_envelope"
	SurchargeSticker         SurchargeCode = "sticker"
	SurchargeMealTicket      SurchargeCode = "meal_ticket"
	SurchargeMap             SurchargeCode = "map"
	SurchargeMobile          SurchargeCode = "mobile"
)

// String implements fmt.Stringer.
func (c SurchargeCode) String() string {
	return string(c)
}

// SurchargeKind tells whether an add-on scales with quantity.
type SurchargeKind string

const (
	SurchargeKindFlat    SurchargeKind = "flat"
	SurchargeKindPerUnit SurchargeKind = "per_unit"
)

// String implements fmt.Stringer.
func (k SurchargeKind) String() string {
	return string(k)
}
