package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tasklens/internal/extraction/repository"
	"tasklens/internal/model"
)

// HistoryRepository is a bounded in-memory result cache. Capacity and TTL
// keep it from growing without limit; least recently used results fall out
// first, which matches how extraction history is actually revisited.
type HistoryRepository struct {
	cache *expirable.LRU[string, model.ExtractionResult]
}

// NewHistoryRepository creates an LRU-backed history store with the given
// capacity and entry TTL.
func NewHistoryRepository(size int, ttl time.Duration) *HistoryRepository {
	return &HistoryRepository{
		cache: expirable.NewLRU[string, model.ExtractionResult](size, nil, ttl),
	}
}

func historyKey(sc model.Scope, id string) string {
	return sc.UserID + "/" + id
}

// SaveResult stores or replaces a result for the scope.
func (r *HistoryRepository) SaveResult(ctx context.Context, sc model.Scope, result model.ExtractionResult) error {
	r.cache.Add(historyKey(sc, result.ID), result)
	return nil
}

// GetResult returns the scope's result by id.
func (r *HistoryRepository) GetResult(ctx context.Context, sc model.Scope, id string) (model.ExtractionResult, error) {
	result, ok := r.cache.Get(historyKey(sc, id))
	if !ok {
		return model.ExtractionResult{}, repository.ErrNotFound
	}
	return result, nil
}

// ListResults returns the scope's cached results, most recent first.
func (r *HistoryRepository) ListResults(ctx context.Context, sc model.Scope) ([]model.ExtractionResult, error) {
	prefix := sc.UserID + "/"

	var results []model.ExtractionResult
	for _, key := range r.cache.Keys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if result, ok := r.cache.Peek(key); ok {
			results = append(results, result)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CompletedAt.After(results[j].CompletedAt)
	})
	return results, nil
}

// DeleteResult removes the scope's result by id.
func (r *HistoryRepository) DeleteResult(ctx context.Context, sc model.Scope, id string) error {
	if !r.cache.Remove(historyKey(sc, id)) {
		return repository.ErrNotFound
	}
	return nil
}
