package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerprep-utils/internal/config"
	"careerprep-utils/pkg/models"
	"careerprep-utils/pkg/utils"
)

type stubProvider struct {
	completion *models.Completion
	err        error
	calls      int
	lastReq    models.CompletionRequest
}

func (s *stubProvider) Complete(ctx context.Context, req models.CompletionRequest) (*models.Completion, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.completion, nil
}

func (s *stubProvider) IsHealthy(ctx context.Context) error { return nil }

func (s *stubProvider) GetProviderName() string { return "stub" }

func managerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = "openai"
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.Model = "gpt-4"
	cfg.LLM.FastModel = "gpt-3.5-turbo"
	cfg.LLM.MaxTokens = 2000
	cfg.LLM.Temperature = 0.7
	cfg.LLM.Timeout = 5 * time.Second
	return cfg
}

func TestManagerCompleteFillsDefaults(t *testing.T) {
	provider := &stubProvider{completion: &models.Completion{Content: "ok"}}
	manager := NewManagerWithProvider(managerConfig(), provider)

	completion, err := manager.Complete(context.Background(), models.CompletionRequest{
		Messages: []models.ChatMessage{{Role: "user", Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", completion.Content)
	assert.Equal(t, "gpt-4", provider.lastReq.Model)
	assert.Equal(t, 2000, provider.lastReq.MaxTokens)
}

func TestManagerCompleteKeepsExplicitModel(t *testing.T) {
	provider := &stubProvider{completion: &models.Completion{Content: "ok"}}
	manager := NewManagerWithProvider(managerConfig(), provider)

	_, err := manager.Complete(context.Background(), models.CompletionRequest{
		Model:     "gpt-3.5-turbo",
		Messages:  []models.ChatMessage{{Role: "user", Content: "hi"}},
		MaxTokens: 250,
	})

	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", provider.lastReq.Model)
	assert.Equal(t, 250, provider.lastReq.MaxTokens)
}

func TestManagerCompleteWithoutProvider(t *testing.T) {
	manager := NewManager(managerConfig())

	_, err := manager.Complete(context.Background(), models.CompletionRequest{})

	var customErr *utils.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "provider_not_configured", customErr.Kind)
}

func TestManagerCompleteWithoutCredential(t *testing.T) {
	provider := &stubProvider{completion: &models.Completion{Content: "ok"}}
	cfg := managerConfig()
	cfg.LLM.APIKey = ""
	manager := NewManagerWithProvider(cfg, provider)

	_, err := manager.Complete(context.Background(), models.CompletionRequest{})

	var customErr *utils.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "provider_not_configured", customErr.Kind)
	assert.Zero(t, provider.calls, "no provider call without a credential")
}

func TestManagerCompleteWrapsProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	manager := NewManagerWithProvider(managerConfig(), provider)

	_, err := manager.Complete(context.Background(), models.CompletionRequest{})

	var customErr *utils.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "upstream_failed", customErr.Kind)
	assert.Contains(t, customErr.Error(), "connection refused")
}

func TestManagerLifecycle(t *testing.T) {
	provider := &stubProvider{completion: &models.Completion{Content: "ok"}}
	manager := NewManagerWithProvider(managerConfig(), provider)

	assert.True(t, manager.IsHealthy())
	assert.Equal(t, "stub", manager.GetProviderName())
	assert.Equal(t, "gpt-3.5-turbo", manager.FastModel())

	require.NoError(t, manager.Stop())
	assert.False(t, manager.IsHealthy())
	assert.Equal(t, "none", manager.GetProviderName())
}

func TestFactoryCreateProvider(t *testing.T) {
	cfg := managerConfig()

	factory := NewFactory(cfg)
	provider, err := factory.CreateProvider()
	require.NoError(t, err)
	assert.Equal(t, "openai", provider.GetProviderName())

	cfg.LLM.Provider = "claude"
	provider, err = NewFactory(cfg).CreateProvider()
	require.NoError(t, err)
	assert.Equal(t, "claude", provider.GetProviderName())

	cfg.LLM.Provider = "bard"
	_, err = NewFactory(cfg).CreateProvider()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}
