package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
)

// ParseQueryInt reads an optional integer query parameter bounded to
// [lo, hi]. A missing or blank value yields fallback.
func ParseQueryInt(r *http.Request, name string, fallback, lo, hi int) (int, error) {
	raw, ok := queryValue(r, name)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "query parameter must be numeric").
			WithDetails(map[string]any{"field": name, "value": raw})
	}
	if n < lo || n > hi {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").
			WithDetails(map[string]any{"field": name, "min": lo, "max": hi})
	}
	return n, nil
}

// QueryString returns the trimmed parameter capped at maxLen runes.
func QueryString(r *http.Request, name string, maxLen int) string {
	raw, _ := queryValue(r, name)
	return SanitizeString(raw, maxLen)
}

func queryValue(r *http.Request, name string) (string, bool) {
	if r == nil || r.URL == nil {
		return "", false
	}
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	return raw, raw != ""
}
