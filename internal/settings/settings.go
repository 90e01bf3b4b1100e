// Package settings exposes the user configuration an extraction call reads:
// selected provider, BYOK API keys, tier, and custom extraction rules. The
// core treats settings as read-only input; nothing here is ever mutated by
// an extraction.
package settings

import (
	"context"

	"tasklens/config"
	"tasklens/internal/model"
)

// Provider supplies the current settings snapshot.
type Provider interface {
	Current(ctx context.Context) (model.Settings, error)
}

type configProvider struct {
	settings model.Settings
}

// FromConfig builds a settings Provider over the loaded service config.
func FromConfig(cfg *config.Config) Provider {
	s := model.Settings{
		Pro:   cfg.Extraction.ProTier,
		Rules: rulesFromConfig(cfg.Extraction.Rules),
	}

	if p, ok := model.ParseAIProvider(cfg.LLM.Default); ok {
		s.AIProvider = p
	} else {
		s.AIProvider = model.ProviderOpenAI
	}

	for _, pc := range cfg.LLM.Providers {
		if !pc.Enabled {
			continue
		}
		switch pc.Name {
		case string(model.ProviderOpenAI):
			s.OpenAIAPIKey = pc.APIKey
		case string(model.ProviderAnthropic):
			s.AnthropicAPIKey = pc.APIKey
		}
	}

	return &configProvider{settings: s}
}

// Static wraps a fixed settings value. Intended for tests and embedding
// callers that manage settings themselves.
func Static(s model.Settings) Provider {
	return &configProvider{settings: s}
}

func (p *configProvider) Current(ctx context.Context) (model.Settings, error) {
	return p.settings, nil
}

func rulesFromConfig(rules []config.RuleConfig) []model.ExtractionRule {
	var out []model.ExtractionRule
	for _, r := range rules {
		rule := model.ExtractionRule{
			Type:    model.RuleType(r.Type),
			Value:   r.Value,
			Enabled: r.Enabled,
		}
		if r.Priority != "" {
			if p, ok := model.ParsePriority(r.Priority); ok {
				rule.Priority = p
			}
		}
		if r.Category != "" {
			if c, ok := model.ParseCategory(r.Category); ok {
				rule.Category = c
			}
		}
		out = append(out, rule)
	}
	return out
}
