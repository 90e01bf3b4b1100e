package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasklens/internal/extraction/repository"
	"tasklens/internal/model"
)

func TestQuotaRepository(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Fresh Scope Reads Zero", func(t *testing.T) {
		repo := NewQuotaRepository()
		rec, err := repo.GetUsage(ctx, sc, "2026-08-28")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Count != 0 || rec.Date != "2026-08-28" {
			t.Errorf("expected zero record for today, got %+v", rec)
		}
	})

	t.Run("Increment Counts Up", func(t *testing.T) {
		repo := NewQuotaRepository()
		for want := 1; want <= 3; want++ {
			rec, err := repo.IncrementUsage(ctx, sc, "2026-08-28")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Count != want {
				t.Errorf("expected count %d, got %d", want, rec.Count)
			}
		}
	})

	t.Run("Date Rollover Reads Zero And Restarts", func(t *testing.T) {
		repo := NewQuotaRepository()
		for i := 0; i < 5; i++ {
			if _, err := repo.IncrementUsage(ctx, sc, "2026-08-27"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		rec, err := repo.GetUsage(ctx, sc, "2026-08-28")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Count != 0 {
			t.Errorf("yesterday's count must read as zero today, got %d", rec.Count)
		}

		rec, err = repo.IncrementUsage(ctx, sc, "2026-08-28")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Count != 1 {
			t.Errorf("increment after rollover must restart at 1, got %d", rec.Count)
		}
	})

	t.Run("Scopes Are Independent", func(t *testing.T) {
		repo := NewQuotaRepository()
		if _, err := repo.IncrementUsage(ctx, sc, "2026-08-28"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rec, err := repo.GetUsage(ctx, model.Scope{UserID: "u2"}, "2026-08-28")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Count != 0 {
			t.Errorf("another scope's usage leaked, got %d", rec.Count)
		}
	})
}

func TestHistoryRepository(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	newResult := func(id string, at time.Time) model.ExtractionResult {
		return model.ExtractionResult{
			ID:          id,
			URL:         "https://example.com/" + id,
			Tasks:       []model.Task{{ID: "t-" + id, Title: "Task for " + id}},
			CompletedAt: at,
		}
	}

	t.Run("Save Get Roundtrip", func(t *testing.T) {
		repo := NewHistoryRepository(16, time.Hour)
		want := newResult("r1", time.Now())
		if err := repo.SaveResult(ctx, sc, want); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := repo.GetResult(ctx, sc, "r1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != want.ID || len(got.Tasks) != 1 {
			t.Errorf("roundtrip mismatch: %+v", got)
		}
	})

	t.Run("Get Missing", func(t *testing.T) {
		repo := NewHistoryRepository(16, time.Hour)
		if _, err := repo.GetResult(ctx, sc, "nope"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List Newest First And Scoped", func(t *testing.T) {
		repo := NewHistoryRepository(16, time.Hour)
		base := time.Now()
		_ = repo.SaveResult(ctx, sc, newResult("old", base.Add(-2*time.Hour)))
		_ = repo.SaveResult(ctx, sc, newResult("new", base))
		_ = repo.SaveResult(ctx, sc, newResult("mid", base.Add(-time.Hour)))
		_ = repo.SaveResult(ctx, model.Scope{UserID: "u2"}, newResult("other", base))

		results, err := repo.ListResults(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results for the scope, got %d", len(results))
		}
		for i, wantID := range []string{"new", "mid", "old"} {
			if results[i].ID != wantID {
				t.Errorf("position %d: expected %s, got %s", i, wantID, results[i].ID)
			}
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := NewHistoryRepository(16, time.Hour)
		_ = repo.SaveResult(ctx, sc, newResult("r1", time.Now()))

		if err := repo.DeleteResult(ctx, sc, "r1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.GetResult(ctx, sc, "r1"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("deleted result must be gone, got %v", err)
		}
		if err := repo.DeleteResult(ctx, sc, "r1"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("double delete must report ErrNotFound, got %v", err)
		}
	})

	t.Run("Capacity Evicts Oldest", func(t *testing.T) {
		repo := NewHistoryRepository(2, time.Hour)
		base := time.Now()
		_ = repo.SaveResult(ctx, sc, newResult("a", base))
		_ = repo.SaveResult(ctx, sc, newResult("b", base))
		_ = repo.SaveResult(ctx, sc, newResult("c", base))

		if _, err := repo.GetResult(ctx, sc, "a"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("oldest entry should have been evicted, got %v", err)
		}
		if _, err := repo.GetResult(ctx, sc, "c"); err != nil {
			t.Errorf("newest entry must survive: %v", err)
		}
	})
}
