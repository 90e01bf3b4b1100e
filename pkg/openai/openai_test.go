package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for missing API key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := Config{APIKey: "sk-test"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model, got %q", cfg.Model)
		}
		if cfg.HTTPClient == nil || cfg.HTTPClient.Timeout != DefaultTimeout {
			t.Errorf("expected default HTTP client with timeout")
		}
	})
}

func TestComplete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
				t.Errorf("unexpected Authorization header %q", got)
			}
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": `{"tasks": []}`}},
				},
				"usage": map[string]int{"prompt_tokens": 100, "completion_tokens": 6},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "sk-test", BaseURL: server.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.Complete(context.Background(), &Request{
			Prompt:      "extract tasks",
			Temperature: 0.3,
			MaxTokens:   4096,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if resp.Text != `{"tasks": []}` {
			t.Errorf("unexpected text %q", resp.Text)
		}
		if resp.Usage == nil || resp.Usage.InputTokens != 100 || resp.Usage.OutputTokens != 6 {
			t.Errorf("usage wrong: %+v", resp.Usage)
		}

		msgs, _ := gotBody["messages"].([]any)
		if len(msgs) != 1 {
			t.Fatalf("expected a single message, got %d", len(msgs))
		}
		msg := msgs[0].(map[string]any)
		if msg["role"] != "user" {
			t.Errorf("expected user role, got %v", msg["role"])
		}
		if gotBody["max_tokens"].(float64) != 4096 {
			t.Errorf("max_tokens wrong: %v", gotBody["max_tokens"])
		}
	})

	t.Run("API Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "sk-bad", BaseURL: server.URL})
		_, err := client.Complete(context.Background(), &Request{Prompt: "p"})
		if err == nil {
			t.Fatalf("expected error for 401")
		}
		if !strings.Contains(err.Error(), "API call failed") {
			t.Errorf("expected wrapped API failure, got %v", err)
		}
	})

	t.Run("No Choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "sk-test", BaseURL: server.URL})
		_, err := client.Complete(context.Background(), &Request{Prompt: "p"})
		if err == nil || !strings.Contains(err.Error(), "no choices") {
			t.Errorf("expected no-choices error, got %v", err)
		}
	})
}
