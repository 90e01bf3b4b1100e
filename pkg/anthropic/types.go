package anthropic

import (
	"fmt"
	"net/http"
)

// Config holds Anthropic client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client

	// BrowserAccess adds the anthropic-dangerous-direct-browser-access
	// header required when the API is called directly from a browser
	// context. Transport accommodation only; it changes no semantics.
	BrowserAccess bool
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("anthropic: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// anthropicImpl is the internal implementation of IAnthropic
type anthropicImpl struct {
	apiKey        string
	baseURL       string
	model         string
	browserAccess bool
	httpClient    *http.Client
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

// Wire types for the Anthropic Messages API
type messagesRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature,omitempty"`
	Messages    []wireMessage `json:"messages"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Role       string         `json:"role"`
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      wireUsage      `json:"usage"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type wireUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
