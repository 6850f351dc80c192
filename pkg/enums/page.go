package enums

import (
	"fmt"
	"strings"
)

// Page identifies a storefront screen.
type Page string

const (
	PageHome       Page = "home"
	PageStoryBased Page = "story_based"
	PageDesigns    Page = "designs"
	PageGallery    Page = "gallery"
	PageStandard   Page = "standard"
	PageOrder      Page = "order"
	PageContact    Page = "contact"
)

var validPages = []Page{
	PageHome,
	PageStoryBased,
	PageDesigns,
	PageGallery,
	PageStandard,
	PageOrder,
	PageContact,
}

// String implements fmt.Stringer.
func (p Page) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Page.
func (p Page) IsValid() bool {
	for _, candidate := range validPages {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePage converts raw input into a Page.
func ParsePage(value string) (Page, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validPages {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid page %q", value)
}

// Pages returns every page in menu order.
func Pages() []Page {
	out := make([]Page, len(validPages))
	copy(out, validPages)
	return out
}
