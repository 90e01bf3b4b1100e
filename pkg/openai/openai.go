package openai

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

// newOpenAIImpl creates a new OpenAI implementation backed by the go-openai SDK
func newOpenAIImpl(cfg Config) *openaiImpl {
	sdkCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	sdkCfg.HTTPClient = cfg.HTTPClient

	return &openaiImpl{
		client: goopenai.NewClientWithConfig(sdkCfg),
		model:  cfg.Model,
	}
}

// Complete sends a single-message, single-turn chat completion request and
// returns the message content of the first choice.
func (o *openaiImpl) Complete(ctx context.Context, req *Request) (*Response, error) {
	resp, err := o.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: response has no choices")
	}

	return &Response{
		Text: resp.Choices[0].Message.Content,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// Model returns the model being used
func (o *openaiImpl) Model() string {
	return o.model
}
