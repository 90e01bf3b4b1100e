package llmprovider

import (
	"context"
	"errors"
	"testing"

	"tasklens/config"
	"tasklens/pkg/anthropic"
)

// Mock anthropic client for adapter tests
type mockAnthropicClient struct {
	resp *anthropic.Response
	err  error
}

func (m *mockAnthropicClient) Complete(ctx context.Context, req *anthropic.Request) (*anthropic.Response, error) {
	return m.resp, m.err
}

func (m *mockAnthropicClient) Model() string { return "claude-test" }

func TestAnthropicAdapter(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		adapter := NewAnthropicAdapter(&mockAnthropicClient{
			resp: &anthropic.Response{Text: `{"tasks": []}`, Usage: &anthropic.Usage{InputTokens: 10, OutputTokens: 4}},
		})

		resp, err := adapter.Complete(context.Background(), &Request{Prompt: "p"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != NameAnthropic || resp.ModelName != "claude-test" {
			t.Errorf("identity wrong: %+v", resp)
		}
		if resp.Usage.InputTokens != 10 {
			t.Errorf("usage lost in translation: %+v", resp.Usage)
		}
	})

	t.Run("Client Error Wrapped", func(t *testing.T) {
		adapter := NewAnthropicAdapter(&mockAnthropicClient{err: errors.New("529 overloaded")})

		_, err := adapter.Complete(context.Background(), &Request{Prompt: "p"})
		var provErr *ProviderError
		if !errors.As(err, &provErr) {
			t.Fatalf("expected ProviderError, got %v", err)
		}
		if provErr.Provider != NameAnthropic {
			t.Errorf("expected anthropic provider tag, got %q", provErr.Provider)
		}
	})

	t.Run("Empty Completion", func(t *testing.T) {
		adapter := NewAnthropicAdapter(&mockAnthropicClient{
			resp: &anthropic.Response{Text: "   \n", Usage: &anthropic.Usage{}},
		})

		_, err := adapter.Complete(context.Background(), &Request{Prompt: "p"})
		if !errors.Is(err, ErrEmptyCompletion) {
			t.Errorf("expected ErrEmptyCompletion, got %v", err)
		}
	})
}

func TestRegistry(t *testing.T) {
	adapter := NewAnthropicAdapter(&mockAnthropicClient{resp: &anthropic.Response{Text: "x", Usage: &anthropic.Usage{}}})
	reg := NewRegistry(adapter)

	t.Run("Get Known", func(t *testing.T) {
		p, ok := reg.Get(NameAnthropic)
		if !ok || p.Name() != NameAnthropic {
			t.Errorf("expected anthropic provider")
		}
	})

	t.Run("Get Unknown", func(t *testing.T) {
		if _, ok := reg.Get("gemini"); ok {
			t.Errorf("registry must be closed over configured providers")
		}
	})

	t.Run("Names Sorted", func(t *testing.T) {
		names := reg.Names()
		if len(names) != 1 || names[0] != NameAnthropic {
			t.Errorf("unexpected names %v", names)
		}
	})
}

func TestInitializeRegistry(t *testing.T) {
	t.Run("Skips Disabled And Keyless", func(t *testing.T) {
		reg, err := InitializeRegistry(&config.LLMConfig{
			Default: NameOpenAI,
			Providers: []config.ProviderConfig{
				{Name: NameOpenAI, Enabled: true, APIKey: "sk-test"},
				{Name: NameAnthropic, Enabled: true, APIKey: ""},   // keyless: skipped
				{Name: NameAnthropic, Enabled: false, APIKey: "x"}, // disabled: skipped
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reg.Len() != 1 {
			t.Errorf("expected one provider, got %d (%v)", reg.Len(), reg.Names())
		}
		if _, ok := reg.Get(NameAnthropic); ok {
			t.Errorf("keyless provider must not be registered")
		}
	})

	t.Run("Both Providers", func(t *testing.T) {
		reg, err := InitializeRegistry(&config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: NameOpenAI, Enabled: true, APIKey: "sk-test"},
				{Name: NameAnthropic, Enabled: true, APIKey: "sk-ant-test"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{NameAnthropic, NameOpenAI}
		got := reg.Names()
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Nothing Configured", func(t *testing.T) {
		_, err := InitializeRegistry(&config.LLMConfig{})
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("Unknown Provider Name", func(t *testing.T) {
		_, err := InitializeRegistry(&config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, APIKey: "x"},
			},
		})
		if !errors.Is(err, ErrUnknownProvider) {
			t.Errorf("expected ErrUnknownProvider, got %v", err)
		}
	})
}
