package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
)

type sampleBody struct {
	Story string `json:"story" validate:"required,max=10"`
	Mood  string `json:"mood" validate:"omitempty,oneof=따뜻한 설레는"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"story":"봄날","mood":"설레는"}`))
	var body sampleBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Story != "봄날" || body.Mood != "설레는" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"story":"봄날","extra":1}`))
	var body sampleBody
	err := DecodeJSONBody(req, &body)
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"mood":"차가운"}`))
	var body sampleBody
	err := DecodeJSONBody(req, &body)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field map, got %T", typed.Details())
	}
	if details["story"] != "is required" {
		t.Fatalf("unexpected story message %q", details["story"])
	}
	if !strings.HasPrefix(details["mood"], "must be one of") {
		t.Fatalf("unexpected mood message %q", details["mood"])
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=5", nil)
	got, err := ParseQueryInt(req, "limit", 20, 1, 50)
	if err != nil || got != 5 {
		t.Fatalf("expected 5, got %d err=%v", got, err)
	}

	req = httptest.NewRequest("GET", "/", nil)
	if got, _ := ParseQueryInt(req, "limit", 20, 1, 50); got != 20 {
		t.Fatalf("expected default 20, got %d", got)
	}

	req = httptest.NewRequest("GET", "/?limit=500", nil)
	if _, err := ParseQueryInt(req, "limit", 20, 1, 50); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected range error, got %v", err)
	}

	req = httptest.NewRequest("GET", "/?limit=abc", nil)
	if _, err := ParseQueryInt(req, "limit", 20, 1, 50); err == nil {
		t.Fatal("expected numeric error")
	}
}

func TestSanitizeStringCountsRunes(t *testing.T) {
	if got := SanitizeString("  도연 스토리  ", 2); got != "도연" {
		t.Fatalf("expected rune-safe truncation, got %q", got)
	}
	if got := SanitizeString(" abc ", 0); got != "abc" {
		t.Fatalf("expected trim only, got %q", got)
	}
}

func TestDecodeJSONBodyEdgeCases(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty", ``, "request body required"},
		{"trailing object", `{"story":"봄"}{"story":"여름"}`, "single JSON object"},
		{"blank story", `{"story":"   "}`, "validation failed"},
		{"too large", `{"story":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, "too large"},
	}
	for _, tc := range cases {
		var body struct {
			Story string `json:"story" validate:"notblank,max=10"`
		}
		err := DecodeJSONBody(httptest.NewRequest("POST", "/", strings.NewReader(tc.body)), &body)
		if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected %q in %q", tc.name, tc.want, err.Error())
		}
	}
}

func TestQueryStringTrimsAndCaps(t *testing.T) {
	req := httptest.NewRequest("GET", "/?style=%20%EB%A1%9C%EB%A7%A8%ED%8B%B1%20", nil)
	if got := QueryString(req, "style", 64); got != "로맨틱" {
		t.Fatalf("expected trimmed style, got %q", got)
	}
	if got := QueryString(req, "theme", 64); got != "" {
		t.Fatalf("expected empty theme, got %q", got)
	}
}
