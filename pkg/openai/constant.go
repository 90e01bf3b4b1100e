package openai

import "time"

const (
	// DefaultModel is the default OpenAI model
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
