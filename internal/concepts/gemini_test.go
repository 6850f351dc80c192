package concepts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc, retries uint64) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewGeminiClient(GeminiConfig{BaseURL: srv.URL, APIKey: "test-key", MaxRetries: retries})
	require.NoError(t, err)
	return client
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(GeminiConfig{})
	assert.Error(t, err)
}

func TestGeminiWriteConcepts(t *testing.T) {
	var captured generateContentRequest
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		drafts := `[{"title":"벚꽃 연가","description":"d","formatSuggestion":"다이컷","imagePrompt":"p"}]`
		resp := map[string]any{"candidates": []any{map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": drafts}}}}}}
		_ = json.NewEncoder(w).Encode(resp)
	}, 0)

	drafts, err := client.WriteConcepts(context.Background(), Request{
		Story:     "벚꽃 아래에서",
		ImageData: "data:image/png;base64,AAAA",
	})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "벚꽃 연가", drafts[0].Title)
	assert.Equal(t, "다이컷", drafts[0].FormatSuggestion)

	require.Len(t, captured.Contents, 1)
	parts := captured.Contents[0].Parts
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0].Text, "벚꽃 아래에서")
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/png", parts[1].InlineData.MimeType)
	assert.Equal(t, "AAAA", parts[1].InlineData.Data)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
}

func TestGeminiRenderReturnsDataURI(t *testing.T) {
	var captured predictRequest
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/imagen-4.0-generate-001:predict", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"predictions":[{"bytesBase64Encoded":"QUJD","mimeType":"image/jpeg"}]}`))
	}, 0)

	uri, err := client.Render(context.Background(), "a card", AspectFormat)
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,QUJD", uri)
	assert.Equal(t, "1:1", captured.Parameters.AspectRatio)
	assert.Equal(t, 1, captured.Parameters.SampleCount)
}

func TestGeminiRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"predictions":[{"bytesBase64Encoded":"QUJD"}]}`))
	}, 2)

	_, err := client.Render(context.Background(), "a card", AspectInvitation)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGeminiDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad prompt"}`))
	}, 3)

	_, err := client.Render(context.Background(), "a card", AspectInvitation)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestGeminiRenderEmptyPredictions(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions":[]}`))
	}, 0)
	_, err := client.Render(context.Background(), "a card", AspectInvitation)
	assert.Error(t, err)
}
