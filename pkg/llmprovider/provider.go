package llmprovider

import "context"

// Provider names. The set is closed: adding a backend means adding one
// adapter and one registry entry, call sites stay untouched.
const (
	NameOpenAI    = "openai"
	NameAnthropic = "anthropic"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete sends a single-turn completion request and returns the raw
	// completion text. One attempt only; retry policy belongs to callers.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "openai", "anthropic")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized single-turn completion request
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response represents a normalized completion response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
}
