package order

import (
	"strings"

	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
)

// DesignSelection is the artwork carried into the order flow. It is read-only
// once chosen; accessors hand out copies of the format references.
type DesignSelection struct {
	SourceID        string   `json:"source_id,omitempty"`
	Name            string   `json:"name"`
	PrimaryImageRef string   `json:"primary_image_ref"`
	FormatImageRefs []string `json:"format_image_refs,omitempty"`
}

// NewDesignSelection validates and normalizes a design descriptor.
func NewDesignSelection(sourceID, name, primaryImageRef string, formatImageRefs ...string) (DesignSelection, error) {
	d := DesignSelection{
		SourceID:        strings.TrimSpace(sourceID),
		Name:            strings.TrimSpace(name),
		PrimaryImageRef: strings.TrimSpace(primaryImageRef),
	}
	if d.Name == "" {
		return DesignSelection{}, pkgerrors.New(pkgerrors.CodeValidation, "design name is required").WithDetails(map[string]any{"field": "design.name"})
	}
	if d.PrimaryImageRef == "" {
		return DesignSelection{}, pkgerrors.New(pkgerrors.CodeValidation, "design image is required").WithDetails(map[string]any{"field": "design.primary_image_ref"})
	}
	for i, ref := range formatImageRefs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return DesignSelection{}, pkgerrors.New(pkgerrors.CodeValidation, "format image reference is blank").WithDetails(map[string]any{"field": "design.format_image_refs", "index": i})
		}
		d.FormatImageRefs = append(d.FormatImageRefs, ref)
	}
	return d, nil
}

// Formats returns a copy of the format image references.
func (d DesignSelection) Formats() []string {
	if len(d.FormatImageRefs) == 0 {
		return nil
	}
	out := make([]string, len(d.FormatImageRefs))
	copy(out, d.FormatImageRefs)
	return out
}

func (d DesignSelection) clone() DesignSelection {
	d.FormatImageRefs = d.Formats()
	return d
}
