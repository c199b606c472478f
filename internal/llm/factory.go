package llm

import (
	"fmt"

	"cvgen-utils/internal/config"
	"cvgen-utils/internal/llm/providers"
)

// Factory creates LLM provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new LLM factory instance
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// CreateProvider creates an LLM provider based on the configuration
func (f *Factory) CreateProvider() (Provider, error) {
	switch f.config.LLM.Provider {
	case "claude":
		return providers.NewClaudeProvider(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", f.config.LLM.Provider)
	}
}

// GetSupportedProviders returns a list of supported LLM providers
func (f *Factory) GetSupportedProviders() []string {
	return []string{"claude"}
}
