package llm

import (
	"context"

	"careerprep-utils/pkg/models"
)

// Provider defines the interface for LLM completion providers
type Provider interface {
	// Complete sends one request to the completion provider and returns the
	// first choice's text content plus usage metadata when available
	Complete(ctx context.Context, req models.CompletionRequest) (*models.Completion, error)

	// IsHealthy checks if the provider is configured and usable
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
