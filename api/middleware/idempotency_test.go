package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
	pkgredis "github.com/angelmondragon/invitation-backend/pkg/redis"
)

type memoryRecords map[string]pkgredis.Record

func (m memoryRecords) LoadRecord(_ context.Context, scope, idemKey string) (*pkgredis.Record, error) {
	if rec, ok := m[pkgredis.IdempotencyKey(scope, idemKey)]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (m memoryRecords) SaveRecord(_ context.Context, scope, idemKey string, rec pkgredis.Record, _ time.Duration) (bool, error) {
	k := pkgredis.IdempotencyKey(scope, idemKey)
	if _, taken := m[k]; taken {
		return false, nil
	}
	m[k] = rec
	return true, nil
}

// routed builds a request as chi would after resolving pattern.
func routed(method, pattern, idemKey string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, pattern, body)
	if idemKey != "" {
		req.Header.Set(idempotencyHeader, idemKey)
	}
	rc := chi.NewRouteContext()
	rc.RoutePatterns = []string{pattern}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

// countingHandler answers with status and body and counts its calls.
func countingHandler(status int, body string, calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func TestRouteTTL(t *testing.T) {
	cases := []struct {
		method, pattern string
		want            time.Duration
	}{
		{http.MethodPost, "/api/v1/orders", criticalIdempotencyTTL},
		{http.MethodPost, "/api/v1/support/inquiries", defaultIdempotencyTTL},
		{http.MethodPost, "/api/v1/orders/quote", 0},
		{http.MethodPost, "/api/v1/concepts", 0},
		{http.MethodGet, "/api/v1/orders", 0},
	}
	for _, tc := range cases {
		ttl, ok := routeTTL(tc.method, tc.pattern)
		assert.Equal(t, tc.want != 0, ok, "%s %s", tc.method, tc.pattern)
		assert.Equal(t, tc.want, ttl, "%s %s", tc.method, tc.pattern)
	}
}

func TestRoutePatternFallsBackForMountedRouters(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/", nil)
	rc := chi.NewRouteContext()
	rc.RoutePatterns = []string{"/api/v1/*"}
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
	assert.Equal(t, "/api/v1/orders", routePattern(req))
}

func TestIdempotencyRequiresKeyOnListedRoutes(t *testing.T) {
	var calls int
	h := Idempotency(memoryRecords{}, nil)(countingHandler(http.StatusAccepted, "", &calls))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, routed(http.MethodPost, "/api/v1/orders", "", strings.NewReader(`{"design_id":"d01"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, calls)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, routed(http.MethodPost, "/api/v1/orders", strings.Repeat("k", maxIdempotencyKey+1), strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, calls)
}

func TestIdempotencyIgnoresQuote(t *testing.T) {
	var calls int
	h := Idempotency(memoryRecords{}, nil)(countingHandler(http.StatusOK, "", &calls))
	h.ServeHTTP(httptest.NewRecorder(), routed(http.MethodPost, "/api/v1/orders/quote", "", strings.NewReader(`{}`)))
	assert.Equal(t, 1, calls)
}

func TestIdempotencyReplaysFirstResponse(t *testing.T) {
	var calls int
	h := Idempotency(memoryRecords{}, nil)(countingHandler(http.StatusAccepted, `{"reference":"ord-1"}`, &calls))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, routed(http.MethodPost, "/api/v1/orders", "abc", strings.NewReader(`{"design_id":"d01"}`)))
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"reference":"ord-1"}`, rec.Body.String())
		assert.Equal(t, i == 1, rec.Header().Get(replayedHeader) == "true", "attempt %d", i+1)
	}
	assert.Equal(t, 1, calls)
}

func TestIdempotencyLeavesServerErrorsRetryable(t *testing.T) {
	store := memoryRecords{}
	var calls int
	h := Idempotency(store, nil)(countingHandler(http.StatusServiceUnavailable, "", &calls))

	for i := 0; i < 2; i++ {
		h.ServeHTTP(httptest.NewRecorder(), routed(http.MethodPost, "/api/v1/orders", "retry-me", strings.NewReader(`{}`)))
	}
	assert.Equal(t, 2, calls)
	assert.Empty(t, store)
}

func TestIdempotencyRejectsChangedBody(t *testing.T) {
	var calls int
	h := Idempotency(memoryRecords{}, nil)(countingHandler(http.StatusAccepted, "", &calls))

	h.ServeHTTP(httptest.NewRecorder(), routed(http.MethodPost, "/api/v1/support/inquiries", "xyz", strings.NewReader(`{"subject":"배송"}`)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, routed(http.MethodPost, "/api/v1/support/inquiries", "xyz", strings.NewReader(`{"subject":"환불"}`)))

	require.Equal(t, http.StatusConflict, rec.Code)
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, string(pkgerrors.CodeIdempotency), payload.Error.Code)
	assert.Equal(t, 1, calls)
}
