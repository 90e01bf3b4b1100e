package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newAnthropicImpl creates a new Anthropic implementation
func newAnthropicImpl(cfg Config) *anthropicImpl {
	return &anthropicImpl{
		apiKey:        cfg.APIKey,
		baseURL:       cfg.BaseURL,
		model:         cfg.Model,
		browserAccess: cfg.BrowserAccess,
		httpClient:    cfg.HTTPClient,
	}
}

// Complete sends a single-message, single-turn request to the Messages API
// and returns the concatenated text blocks of the reply.
func (a *anthropicImpl) Complete(ctx context.Context, req *Request) (*Response, error) {
	wireReq := messagesRequest{
		Model:       a.model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Messages: []wireMessage{
			{Role: "user", Content: req.Prompt},
		},
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.baseURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to create request: %w", err)
	}

	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", APIVersion)
	httpReq.Header.Set("Content-Type", "application/json")
	if a.browserAccess {
		httpReq.Header.Set("anthropic-dangerous-direct-browser-access", "true")
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("anthropic: failed to decode response: %w", err)
	}

	return transformResponse(&wireResp), nil
}

// Model returns the model being used
func (a *anthropicImpl) Model() string {
	return a.model
}

func transformResponse(resp *messagesResponse) *Response {
	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return &Response{
		Text: sb.String(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		},
	}
}
