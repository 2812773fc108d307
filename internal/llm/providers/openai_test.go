package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerprep-utils/internal/config"
	"careerprep-utils/pkg/models"
)

func openAITestConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = "openai"
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = baseURL
	cfg.LLM.Timeout = 5 * time.Second
	return cfg
}

func TestOpenAIProviderComplete(t *testing.T) {
	var gotBody chatCompletionsBody
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "Hello there"}}],
			"usage": {"prompt_tokens": 9, "completion_tokens": 3, "total_tokens": 12}
		}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(openAITestConfig(server.URL))

	completion, err := provider.Complete(context.Background(), models.CompletionRequest{
		Model:       "gpt-4",
		Messages:    []models.ChatMessage{{Role: "user", Content: "hi"}},
		Temperature: 0.4,
		MaxTokens:   100,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello there", completion.Content)
	require.NotNil(t, completion.Usage)
	assert.Equal(t, 12, completion.Usage.TotalTokens)

	assert.Equal(t, "gpt-4", gotBody.Model)
	assert.Equal(t, 0.4, gotBody.Temperature)
	assert.Equal(t, 100, gotBody.MaxTokens)
	require.Len(t, gotBody.Messages, 1)
}

func TestOpenAIProviderUpstreamErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "Rate limit reached"}}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(openAITestConfig(server.URL))

	_, err := provider.Complete(context.Background(), models.CompletionRequest{
		Model:    "gpt-4",
		Messages: []models.ChatMessage{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=429")
	assert.Contains(t, err.Error(), "Rate limit reached")
}

func TestOpenAIProviderNonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(openAITestConfig(server.URL))

	_, err := provider.Complete(context.Background(), models.CompletionRequest{
		Model:    "gpt-4",
		Messages: []models.ChatMessage{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
}

func TestOpenAIProviderEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(openAITestConfig(server.URL))

	_, err := provider.Complete(context.Background(), models.CompletionRequest{
		Model:    "gpt-4",
		Messages: []models.ChatMessage{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}

func TestChatCompletionsURL(t *testing.T) {
	tests := []struct {
		baseURL  string
		expected string
	}{
		{"", "https://api.openai.com/v1/chat/completions"},
		{"https://proxy.local/v1", "https://proxy.local/v1/chat/completions"},
		{"https://proxy.local/v1/", "https://proxy.local/v1/chat/completions"},
		{"https://proxy.local/v1/chat/completions", "https://proxy.local/v1/chat/completions"},
	}

	for _, tt := range tests {
		provider := NewOpenAIProvider(openAITestConfig(tt.baseURL))
		assert.Equal(t, tt.expected, provider.chatCompletionsURL(), "base url %q", tt.baseURL)
	}
}

func TestOpenAIProviderIsHealthy(t *testing.T) {
	provider := NewOpenAIProvider(openAITestConfig("https://proxy.local/v1"))
	assert.NoError(t, provider.IsHealthy(context.Background()))

	cfg := openAITestConfig("https://proxy.local/v1")
	cfg.LLM.APIKey = ""
	provider = NewOpenAIProvider(cfg)
	assert.Error(t, provider.IsHealthy(context.Background()))
}
