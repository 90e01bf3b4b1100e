package anthropic

import "time"

const (
	// DefaultModel is the default Anthropic model
	DefaultModel = "claude-3-5-sonnet-20241022"

	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// APIVersion is the anthropic-version header value
	APIVersion = "2023-06-01"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
