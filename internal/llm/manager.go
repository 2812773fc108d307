package llm

import (
	"context"
	"fmt"
	"sync"

	"careerprep-utils/internal/config"
	"careerprep-utils/internal/logging"
	"careerprep-utils/pkg/models"
	"careerprep-utils/pkg/utils"
)

// Manager manages the LLM provider and its lifecycle
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		logger:  logging.GetGlobalLogger(),
	}
}

// NewManagerWithProvider creates a manager around an explicit provider.
// Used by tests to inject a fake provider.
func NewManagerWithProvider(cfg *config.Config, provider Provider) *Manager {
	return &Manager{
		config:   cfg,
		factory:  NewFactory(cfg),
		provider: provider,
		logger:   logging.GetGlobalLogger(),
		healthy:  true,
	}
}

// Start initializes the LLM manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{"provider": m.config.LLM.Provider})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed - completion endpoints will refuse requests", map[string]interface{}{"error": err.Error()})
		m.healthy = false
		// Don't return error - allow server to start without a credential
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{"provider": m.provider.GetProviderName()})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// Complete sends a single completion request to the configured provider.
// Configuration problems are reported before any network call is attempted;
// provider failures are re-raised as a generic upstream error carrying the
// provider's message.
func (m *Manager) Complete(ctx context.Context, req models.CompletionRequest) (*models.Completion, error) {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return nil, utils.NewConfigurationError("LLM manager not started or provider not available")
	}

	if m.config.LLM.APIKey == "" {
		return nil, utils.NewConfigurationError("LLM API key not configured - set LLM_API_KEY environment variable")
	}

	if req.Model == "" {
		req.Model = m.config.LLM.Model
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = m.config.LLM.MaxTokens
	}

	completion, err := provider.Complete(ctx, req)
	if err != nil {
		return nil, utils.NewUpstreamError(err.Error())
	}

	return completion, nil
}

// FastModel returns the configured model for latency-sensitive flows
func (m *Manager) FastModel() string {
	return m.config.LLM.FastModel
}

// IsHealthy reports whether the manager has a configured provider
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}
