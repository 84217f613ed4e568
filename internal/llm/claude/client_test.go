package claude

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
	return &config.ProviderConfig{Provider: "claude", APIKey: "test-key", Model: "claude-sonnet-4-20250514", TimeoutSecs: 5}
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-sonnet-4-20250514", body["model"])

		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "generated text"}], "stop_reason": "end_turn"}`))
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(providerConfig(), srv.URL)
	out, err := c.Generate(context.Background(), "a prompt")
	require.NoError(t, err)
	assert.Equal(t, "generated text", out)
}

func TestGenerate_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "45")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"type": "rate_limit_error"}}`))
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(providerConfig(), srv.URL)
	_, err := c.Generate(context.Background(), "a prompt")
	require.Error(t, err)

	var rlErr *llm.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "claude", rlErr.Provider)
	assert.Equal(t, 45.0, rlErr.RetryAfter.Seconds())
}

func TestGenerate_Truncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "partial"}], "stop_reason": "max_tokens"}`))
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(providerConfig(), srv.URL)
	_, err := c.Generate(context.Background(), "a prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens")
}

func TestGenerate_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": [], "stop_reason": "end_turn"}`))
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(providerConfig(), srv.URL)
	_, err := c.Generate(context.Background(), "a prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
