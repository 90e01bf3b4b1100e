package llmprovider

import (
	"fmt"

	"tasklens/config"
	"tasklens/pkg/anthropic"
	"tasklens/pkg/openai"
)

// InitializeRegistry creates Provider instances from config.LLMConfig and
// returns them as a Registry. Disabled providers are filtered out; providers
// without an API key are skipped rather than failing the whole service, so a
// user who configured only one backend still gets a working pipeline.
func InitializeRegistry(cfg *config.LLMConfig) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var providers []Provider
	for _, p := range cfg.Providers {
		if !p.Enabled || p.APIKey == "" {
			continue
		}
		provider, err := createProvider(p)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize provider %s: %w", p.Name, err)
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	return NewRegistry(providers...), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case NameOpenAI:
		client, err := openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client), nil

	case NameAnthropic:
		client, err := anthropic.New(anthropic.Config{
			APIKey:        cfg.APIKey,
			Model:         cfg.Model,
			BaseURL:       cfg.BaseURL,
			BrowserAccess: cfg.BrowserAccess,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return NewAnthropicAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}
