package anthropic

import "context"

// IAnthropic defines the interface for the Anthropic Messages API client.
// Implementations are safe for concurrent use.
type IAnthropic interface {
	// Complete sends a single-turn completion request to the Anthropic API
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Anthropic client with the given configuration
func New(cfg Config) (IAnthropic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newAnthropicImpl(cfg), nil
}
