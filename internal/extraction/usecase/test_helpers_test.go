package usecase_test

import (
	"context"
	"fmt"
	"time"

	"tasklens/internal/extraction/repository"
	"tasklens/internal/model"
	"tasklens/pkg/llmprovider"
	"tasklens/pkg/log"
)

const validCompletion = `{"tasks": [{"title": "Send the report", "priority": "high", "category": "deadline", "confidence": 0.9}]}`

// Mock provider with a call counter, for asserting the pipeline never
// reaches the network when a precondition fails.
type mockProvider struct {
	name  string
	calls int
	resp  *llmprovider.Response
	err   error
}

func (m *mockProvider) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "mock-model" }

func newMockProvider(text string) *mockProvider {
	return &mockProvider{
		name: llmprovider.NameOpenAI,
		resp: &llmprovider.Response{
			Text:         text,
			ProviderName: llmprovider.NameOpenAI,
			ModelName:    "mock-model",
		},
	}
}

// Mock quota repository with an increment counter.
type mockQuotaRepo struct {
	records    map[string]model.UsageRecord
	increments int
	getErr     error
}

func newMockQuotaRepo() *mockQuotaRepo {
	return &mockQuotaRepo{records: make(map[string]model.UsageRecord)}
}

func (m *mockQuotaRepo) GetUsage(ctx context.Context, sc model.Scope, date string) (model.UsageRecord, error) {
	if m.getErr != nil {
		return model.UsageRecord{}, m.getErr
	}
	return m.records[sc.UserID], nil
}

func (m *mockQuotaRepo) IncrementUsage(ctx context.Context, sc model.Scope, date string) (model.UsageRecord, error) {
	m.increments++
	rec := m.records[sc.UserID]
	if rec.Date != date {
		rec = model.UsageRecord{Date: date}
	}
	rec.Count++
	m.records[sc.UserID] = rec
	return rec, nil
}

func (m *mockQuotaRepo) seed(userID string, count int) {
	m.records[userID] = model.UsageRecord{
		Date:  time.Now().Format(model.UsageDateFormat),
		Count: count,
	}
}

// Mock history repository.
type mockHistoryRepo struct {
	saved   []model.ExtractionResult
	saveErr error
}

func (m *mockHistoryRepo) SaveResult(ctx context.Context, sc model.Scope, result model.ExtractionResult) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	for i, r := range m.saved {
		if r.ID == result.ID {
			m.saved[i] = result
			return nil
		}
	}
	m.saved = append(m.saved, result)
	return nil
}

func (m *mockHistoryRepo) GetResult(ctx context.Context, sc model.Scope, id string) (model.ExtractionResult, error) {
	for _, r := range m.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return model.ExtractionResult{}, repository.ErrNotFound
}

func (m *mockHistoryRepo) ListResults(ctx context.Context, sc model.Scope) ([]model.ExtractionResult, error) {
	return m.saved, nil
}

func (m *mockHistoryRepo) DeleteResult(ctx context.Context, sc model.Scope, id string) error {
	for i, r := range m.saved {
		if r.ID == id {
			m.saved = append(m.saved[:i], m.saved[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// warnCapture records Warnf lines and discards everything else.
type warnCapture struct {
	log.Logger
	warns []string
}

func newWarnCapture() *warnCapture {
	return &warnCapture{Logger: log.NewNop()}
}

func (w *warnCapture) Warnf(ctx context.Context, template string, args ...any) {
	w.warns = append(w.warns, fmt.Sprintf(template, args...))
}

func openAISettings() model.Settings {
	return model.Settings{
		AIProvider:   model.ProviderOpenAI,
		OpenAIAPIKey: "sk-test",
	}
}
