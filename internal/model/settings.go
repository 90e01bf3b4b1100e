package model

// AIProvider selects which LLM backend serves an extraction.
type AIProvider string

const (
	ProviderOpenAI    AIProvider = "openai"
	ProviderAnthropic AIProvider = "anthropic"
)

// ParseAIProvider returns the provider for s and whether s named a known one.
func ParseAIProvider(s string) (AIProvider, bool) {
	switch AIProvider(s) {
	case ProviderOpenAI, ProviderAnthropic:
		return AIProvider(s), true
	}
	return "", false
}

// Settings is the read-only user configuration consumed by an extraction
// call. Keys are BYOK: supplied by the user, never proxied through a third
// party. The core never mutates settings.
type Settings struct {
	AIProvider      AIProvider
	OpenAIAPIKey    string
	AnthropicAPIKey string
	Pro             bool // pro tier is exempt from the daily quota
	Rules           []ExtractionRule
}

// APIKeyFor resolves the configured key for the selected provider.
func (s Settings) APIKeyFor(p AIProvider) string {
	switch p {
	case ProviderOpenAI:
		return s.OpenAIAPIKey
	case ProviderAnthropic:
		return s.AnthropicAPIKey
	}
	return ""
}
