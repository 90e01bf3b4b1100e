package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tasklens/internal/extraction"
	"tasklens/internal/extraction/usecase"
	"tasklens/internal/model"
	"tasklens/internal/settings"
	"tasklens/pkg/llmprovider"
	"tasklens/pkg/log"
	"tasklens/pkg/openai"
)

const emailBody = `From: Sarah <sarah@example.com>
Subject: Q3 invoice

Hi team,

Could someone send the Q3 invoice to the client before Friday? It is
blocking their payment run.

Thanks,
Sarah`

const emailCompletion = `{"tasks": [{
	"title": "Send the Q3 invoice to the client",
	"priority": "high",
	"category": "deadline",
	"dueDate": "2026-09-04",
	"sender": "Sarah",
	"assignee": "Sarah",
	"confidence": 0.9
}]}`

// Drives Extract in email mode through the real OpenAI client against a
// stub chat-completions server, end to end: prompt out, tasks back.
func TestExtractEmailOverWire(t *testing.T) {
	var sentPrompt string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(body.Messages) == 1 {
			sentPrompt = body.Messages[0].Content
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": emailCompletion}},
			},
			"usage": map[string]int{"prompt_tokens": 420, "completion_tokens": 60},
		})
	}))
	defer server.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	registry := llmprovider.NewRegistry(llmprovider.NewOpenAIAdapter(client))

	quota := newMockQuotaRepo()
	history := &mockHistoryRepo{}
	uc := usecase.New(log.NewNop(), registry, settings.Static(openAISettings()), quota, history, 5)

	sc := model.Scope{UserID: "u1"}
	out, err := uc.Extract(context.Background(), sc, extraction.ExtractInput{
		Content: emailBody,
		Title:   "Q3 invoice",
		Mode:    model.ModeEmail,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(sentPrompt, "EMAIL HEURISTICS:") {
		t.Errorf("email mode instructions missing from the wire prompt")
	}
	if !strings.Contains(sentPrompt, "send the Q3 invoice") {
		t.Errorf("email body missing from the wire prompt")
	}

	if len(out.Result.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(out.Result.Tasks))
	}
	task := out.Result.Tasks[0]
	if task.Category != model.CategoryAction && task.Category != model.CategoryDeadline {
		t.Errorf("expected an action or deadline category, got %q", task.Category)
	}
	if task.Sender != "Sarah" {
		t.Errorf("expected sender from the email sign-off, got %q", task.Sender)
	}
	if task.Assignee != "Sarah" {
		t.Errorf("expected assignee %q, got %q", "Sarah", task.Assignee)
	}
	if task.DueDate != "2026-09-04" {
		t.Errorf("due date not passed through, got %q", task.DueDate)
	}

	if out.UsedToday != 1 || quota.increments != 1 {
		t.Errorf("expected one quota increment, got used=%d increments=%d", out.UsedToday, quota.increments)
	}
	if len(history.saved) != 1 {
		t.Errorf("expected the result saved to history")
	}
}
