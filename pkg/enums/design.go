package enums

import (
	"fmt"
	"strings"
)

// DesignCollection groups catalog designs by storefront page.
type DesignCollection string

const (
	DesignCollectionSignature DesignCollection = "signature"
	DesignCollectionStandard  DesignCollection = "standard"
)

var validDesignCollections = []DesignCollection{
	DesignCollectionSignature,
	DesignCollectionStandard,
}

// String implements fmt.Stringer.
func (c DesignCollection) String() string {
	return string(c)
}

// IsValid reports whether the value is a known DesignCollection.
func (c DesignCollection) IsValid() bool {
	for _, candidate := range validDesignCollections {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseDesignCollection converts raw input into a DesignCollection.
func ParseDesignCollection(value string) (DesignCollection, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validDesignCollections {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid design collection %q", value)
}

// DesignStyle is the style facet of a catalog design.
type DesignStyle string

const (
	DesignStyleModern      DesignStyle = "모던"
	DesignStyleVintage     DesignStyle = "빈티지"
	DesignStyleRomantic    DesignStyle = "로맨틱"
	DesignStyleMinimal     DesignStyle = "미니멀"
	DesignStyleTraditional DesignStyle = "전통"
	DesignStyleCasual      DesignStyle = "캐주얼"
)

var validDesignStyles = []DesignStyle{
	DesignStyleModern,
	DesignStyleVintage,
	DesignStyleRomantic,
	DesignStyleMinimal,
	DesignStyleTraditional,
	DesignStyleCasual,
}

// String implements fmt.Stringer.
func (s DesignStyle) String() string {
	return string(s)
}

// IsValid reports whether the value is a known DesignStyle.
func (s DesignStyle) IsValid() bool {
	for _, candidate := range validDesignStyles {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseDesignStyle converts raw input into a DesignStyle.
func ParseDesignStyle(value string) (DesignStyle, error) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range validDesignStyles {
		if string(candidate) == trimmed {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid design style %q", value)
}

// DesignTheme is the motif facet of a catalog design.
type DesignTheme string

const (
	DesignThemeFlower       DesignTheme = "꽃"
	DesignThemeNature       DesignTheme = "자연"
	DesignThemeIllustration DesignTheme = "일러스트"
	DesignThemePhoto        DesignTheme = "사진"
	DesignThemeCalligraphy  DesignTheme = "캘리그라피"
)

var validDesignThemes = []DesignTheme{
	DesignThemeFlower,
	DesignThemeNature,
	DesignThemeIllustration,
	DesignThemePhoto,
	DesignThemeCalligraphy,
}

// String implements fmt.Stringer.
func (t DesignTheme) String() string {
	return string(t)
}

// IsValid reports whether the value is a known DesignTheme.
func (t DesignTheme) IsValid() bool {
	for _, candidate := range validDesignThemes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseDesignTheme converts raw input into a DesignTheme.
func ParseDesignTheme(value string) (DesignTheme, error) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range validDesignThemes {
		if string(candidate) == trimmed {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid design theme %q", value)
}

// DesignTone is the color facet of a catalog design.
type DesignTone string

const (
	DesignToneWarm   DesignTone = "웜톤"
	DesignToneCool   DesignTone = "쿨톤"
	DesignTonePastel DesignTone = "파스텔"
	DesignToneVivid  DesignTone = "비비드"
)

var validDesignTones = []DesignTone{
	DesignToneWarm,
	DesignToneCool,
	DesignTonePastel,
	DesignToneVivid,
}

// String implements fmt.Stringer.
func (t DesignTone) String() string {
	return string(t)
}

// IsValid reports whether the value is a known DesignTone.
func (t DesignTone) IsValid() bool {
	for _, candidate := range validDesignTones {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseDesignTone converts raw input into a DesignTone.
func ParseDesignTone(value string) (DesignTone, error) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range validDesignTones {
		if string(candidate) == trimmed {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid design tone %q", value)
}

// DesignStyles returns the style filter values in display order.
func DesignStyles() []DesignStyle {
	return append([]DesignStyle(nil), validDesignStyles...)
}

// DesignThemes returns the theme filter values in display order.
func DesignThemes() []DesignTheme {
	return append([]DesignTheme(nil), validDesignThemes...)
}

// DesignTones returns the color filter values in display order.
func DesignTones() []DesignTone {
	return append([]DesignTone(nil), validDesignTones...)
}
