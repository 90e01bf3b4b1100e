package openai

import (
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"
)

// Config holds OpenAI client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// openaiImpl is the internal implementation of IOpenAI
type openaiImpl struct {
	client *goopenai.Client
	model  string
}

// Request is a single-turn completion request
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response is the text completion extracted from the provider envelope
type Response struct {
	Text  string
	Usage *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
}
