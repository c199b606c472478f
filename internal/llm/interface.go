package llm

import (
	"context"

	"cvgen-utils/pkg/models"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Ask sends a single-turn prompt and returns the raw text response
	Ask(ctx context.Context, prompt string, opts models.AskOptions) (string, error)

	// IsHealthy checks if the LLM provider is configured and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
