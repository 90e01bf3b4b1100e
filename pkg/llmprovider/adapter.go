package llmprovider

import (
	"context"
	"strings"

	"tasklens/pkg/anthropic"
	"tasklens/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// Complete implements Provider interface
func (a *OpenAIAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Complete(ctx, &openai.Request{
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: NameOpenAI, Err: err}
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, &ProviderError{Provider: NameOpenAI, Err: ErrEmptyCompletion}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: NameOpenAI,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return NameOpenAI
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// AnthropicAdapter adapts pkg/anthropic to the llmprovider.Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// Complete implements Provider interface
func (a *AnthropicAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Complete(ctx, &anthropic.Request{
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: NameAnthropic, Err: err}
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, &ProviderError{Provider: NameAnthropic, Err: ErrEmptyCompletion}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: NameAnthropic,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return NameAnthropic
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}
