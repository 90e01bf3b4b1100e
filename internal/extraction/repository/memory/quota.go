package memory

import (
	"context"
	"sync"

	"tasklens/internal/model"
)

// QuotaRepository is the in-memory quota store. Mutation is serialized
// behind a single mutex, so two extraction calls racing the daily limit
// cannot both observe "allowed" and both increment past it.
type QuotaRepository struct {
	mu      sync.Mutex
	records map[string]model.UsageRecord // keyed by scope user id
}

// NewQuotaRepository creates an empty in-memory quota store.
func NewQuotaRepository() *QuotaRepository {
	return &QuotaRepository{
		records: make(map[string]model.UsageRecord),
	}
}

// GetUsage returns the scope's record for date. A record left over from a
// prior date reads as zero; it is not deleted.
func (r *QuotaRepository) GetUsage(ctx context.Context, sc model.Scope, date string) (model.UsageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[sc.UserID]
	if !ok || rec.Date != date {
		return model.UsageRecord{Date: date, Count: 0}, nil
	}
	return rec, nil
}

// IncrementUsage bumps the scope's counter for date, restarting at one when
// the stored record belongs to a prior date.
func (r *QuotaRepository) IncrementUsage(ctx context.Context, sc model.Scope, date string) (model.UsageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[sc.UserID]
	if !ok || rec.Date != date {
		rec = model.UsageRecord{Date: date, Count: 0}
	}
	rec.Count++
	r.records[sc.UserID] = rec
	return rec, nil
}
