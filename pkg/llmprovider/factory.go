package llmprovider

import (
	"fmt"

	"argo-assistant/config"
)

// InitializeProvider creates the Provider selected by cfg.Provider.
func InitializeProvider(cfg config.LLMConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: provider %s has no API key", ErrNoProvidersConfigured, cfg.Provider)
	}

	switch cfg.Provider {
	case config.LLMProviderOpenAI, "":
		return NewOpenAIAdapter(cfg.APIKey, cfg.BaseURL, cfg.Model)

	case config.LLMProviderAnthropic:
		return NewAnthropicAdapter(cfg.APIKey, cfg.BaseURL, cfg.Model)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
