package order

import (
	"math"
	"strings"

	"github.com/angelmondragon/invitation-backend/internal/pricing"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
)

// Presets are the quantity buttons offered on the order screen.
var Presets = []int64{50, 100, 150, 200}

// DefaultPreset is selected when the order screen opens.
const DefaultPreset int64 = 100

// QuantitySelection keeps both the preset and the custom text. Non-empty
// custom text overrides the preset without erasing it.
type QuantitySelection struct {
	Preset int64  `json:"preset"`
	Custom string `json:"custom"`
}

// NewQuantitySelection starts on DefaultPreset with no custom text.
func NewQuantitySelection() QuantitySelection {
	return QuantitySelection{Preset: DefaultPreset}
}

// IsPreset reports whether v is one of the offered preset buttons.
func IsPreset(v int64) bool {
	for _, p := range Presets {
		if p == v {
			return true
		}
	}
	return false
}

// SelectPreset activates a preset button and blanks the custom text.
func (q *QuantitySelection) SelectPreset(v int64) error {
	if !IsPreset(v) {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity preset not offered").WithDetails(map[string]any{
			"field":   "preset",
			"value":   v,
			"allowed": Presets,
		})
	}
	q.Preset = v
	q.Custom = ""
	return nil
}

// EnterCustom stores the raw custom text. The stored preset is kept.
func (q *QuantitySelection) EnterCustom(raw string) {
	q.Custom = raw
}

// PresetActive reports whether the preset button is the one in effect.
func (q QuantitySelection) PresetActive() bool {
	return q.Custom == ""
}

// Effective returns the quantity used for pricing.
func (q QuantitySelection) Effective() int64 {
	if q.Custom != "" {
		return ParseCustomQuantity(q.Custom)
	}
	if q.Preset < 0 {
		return 0
	}
	return q.Preset
}

// ParseCustomQuantity reads a base-10 integer from free text the way the
// storefront input did: surrounding space is ignored, an optional sign and the
// leading run of digits are read, and anything after them is dropped ("120장"
// is 120). Text without leading digits, negative values and values above
// pricing.MaxPricedQuantity normalize to 0.
func ParseCustomQuantity(raw string) int64 {
	s := strings.TrimSpace(raw)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n int64
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0
		}
		n = n*10 + d
		digits++
	}
	if digits == 0 || negative || n > pricing.MaxPricedQuantity {
		return 0
	}
	return n
}
