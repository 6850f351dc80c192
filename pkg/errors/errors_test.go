package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeTable(t *testing.T) {
	want := map[Code]Metadata{
		CodeValidation:    {http.StatusBadRequest, false, "validation failed", true},
		CodeNotFound:      {http.StatusNotFound, false, "resource not found", false},
		CodeConflict:      {http.StatusConflict, false, "conflict detected", false},
		CodeStateConflict: {http.StatusUnprocessableEntity, false, "order not ready for submission", true},
		CodeIdempotency:   {http.StatusConflict, false, "idempotency key reused", true},
		CodeRateLimit:     {http.StatusTooManyRequests, false, "rate limit exceeded", false},
		CodeInternal:      {http.StatusInternalServerError, true, "internal server error", false},
		CodeDependency:    {http.StatusServiceUnavailable, true, "dependency unavailable", true},
	}
	for code, meta := range want {
		assert.Equal(t, meta, MetadataFor(code), string(code))
	}
	assert.Equal(t, want[CodeInternal], MetadataFor("SOMETHING_UNKNOWN"))
}

func TestSubmissionGateError(t *testing.T) {
	reasons := map[string]any{"reasons": []string{"design_missing", "quantity_missing"}}
	err := New(CodeStateConflict, "order is not ready").WithDetails(reasons)

	assert.Equal(t, CodeStateConflict, err.Code())
	assert.Equal(t, "order is not ready", err.Message())
	assert.Equal(t, reasons, err.Details())
	assert.EqualError(t, err, "STATE_CONFLICT: order is not ready")
	assert.Nil(t, err.Unwrap())
}

func TestWrapKeepsCauseReachable(t *testing.T) {
	cause := stdErrors.New("topic not found")
	err := fmt.Errorf("submit order: %w", Wrap(CodeDependency, cause, "order sink unavailable"))

	assert.ErrorIs(t, err, cause)
	typed := As(err)
	require.NotNil(t, typed)
	assert.Equal(t, CodeDependency, typed.Code())
	assert.True(t, IsCode(err, CodeDependency))
	assert.False(t, IsCode(err, CodeInternal))
}

func TestAsOnUntypedAndNil(t *testing.T) {
	assert.Nil(t, As(nil))
	assert.Nil(t, As(stdErrors.New("plain")))
	assert.False(t, IsCode(stdErrors.New("plain"), CodeInternal))
	assert.False(t, IsCode(nil, CodeInternal))
}

func TestNilErrorAccessors(t *testing.T) {
	var e *Error
	assert.Equal(t, "", e.Error())
	assert.Nil(t, e.Unwrap())
}

func TestDumpFlattensChain(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := fmt.Errorf("publish order: %w", Wrap(CodeDependency, cause, "sink unavailable"))

	d := Dump(err)
	assert.Equal(t, CodeDependency, d.Code)
	assert.Len(t, d.Chain, 3)
	assert.Empty(t, d.PGCode)
}
