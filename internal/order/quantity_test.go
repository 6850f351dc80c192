package order

import (
	"testing"

	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
)

func TestParseCustomQuantity(t *testing.T) {
	cases := map[string]int64{
		"30":                   30,
		"  250 ":               250,
		"+75":                  75,
		"120장":                 120,
		"007":                  7,
		"abc":                  0,
		"":                     0,
		"   ":                  0,
		"-5":                   0,
		"-0":                   0,
		"1e3":                  1,
		"12.9":                 12,
		"99999999999999999999": 0,
		"9223372036854775807":  0,
		"20000000000000000":    0,
		"9708812670373353":     9708812670373353,
		"9708812670373354":     0,
	}
	for raw, want := range cases {
		if got := ParseCustomQuantity(raw); got != want {
			t.Errorf("ParseCustomQuantity(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestQuantitySelectionCustomOverridesPreset(t *testing.T) {
	q := NewQuantitySelection()
	if q.Effective() != DefaultPreset || !q.PresetActive() {
		t.Fatalf("expected default preset %d, got %+v", DefaultPreset, q)
	}

	q.EnterCustom("30")
	if q.Effective() != 30 {
		t.Fatalf("expected custom 30 to win, got %d", q.Effective())
	}
	if q.Preset != 100 || q.PresetActive() {
		t.Fatalf("expected preset kept but inactive, got %+v", q)
	}

	q.EnterCustom("")
	if q.Effective() != 100 {
		t.Fatalf("expected preset to apply after clearing custom text, got %d", q.Effective())
	}
}

func TestQuantitySelectionCustomGarbageIsZero(t *testing.T) {
	q := NewQuantitySelection()
	q.EnterCustom("abc")
	if q.Effective() != 0 {
		t.Fatalf("expected 0 for non-numeric custom text, got %d", q.Effective())
	}
	q.EnterCustom("-5")
	if q.Effective() != 0 {
		t.Fatalf("expected negative custom text to normalize to 0, got %d", q.Effective())
	}
}

func TestSelectPresetClearsCustom(t *testing.T) {
	q := NewQuantitySelection()
	q.EnterCustom("42")
	if err := q.SelectPreset(200); err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	if q.Custom != "" || q.Effective() != 200 {
		t.Fatalf("expected preset 200 with blank custom, got %+v", q)
	}
}

func TestSelectPresetRejectsUnknownValue(t *testing.T) {
	q := NewQuantitySelection()
	err := q.SelectPreset(120)
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if q.Preset != DefaultPreset {
		t.Fatalf("expected preset unchanged, got %d", q.Preset)
	}
}
