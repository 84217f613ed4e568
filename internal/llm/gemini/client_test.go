package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexora/internal/config"
	"lexora/internal/llm"
)

func providerConfig() *config.ProviderConfig {
	return &config.ProviderConfig{Provider: "gemini", APIKey: "test-key", Model: "gemini-1.5-pro", TimeoutSecs: 5}
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		contents := body["contents"].([]interface{})
		require.Len(t, contents, 1)

		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "generated text"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(providerConfig(), srv.URL)
	out, err := c.Generate(context.Background(), "a prompt")
	require.NoError(t, err)
	assert.Equal(t, "generated text", out)
}

func TestGenerate_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(providerConfig(), srv.URL)
	_, err := c.Generate(context.Background(), "a prompt")
	require.Error(t, err)

	var rlErr *llm.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "gemini", rlErr.Provider)
	assert.Equal(t, 30.0, rlErr.RetryAfter.Seconds())
}

func TestGenerate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "bad request"}}`))
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(providerConfig(), srv.URL)
	_, err := c.Generate(context.Background(), "a prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(providerConfig(), srv.URL)
	_, err := c.Generate(context.Background(), "a prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
