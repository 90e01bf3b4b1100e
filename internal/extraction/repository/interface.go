package repository

import (
	"context"

	"tasklens/internal/model"
)

// QuotaRepository is the date-keyed extraction counter store. Contract: a
// record for a prior date is treated as count 0 for the requested date;
// reset is implicit via date comparison, never an active deletion.
// Implementations serialize mutation so concurrent extractions cannot both
// slip past the daily limit.
type QuotaRepository interface {
	// GetUsage returns the usage record for the scope on the given date
	// (model.UsageDateFormat). A scope with no record for that date gets a
	// zero record.
	GetUsage(ctx context.Context, sc model.Scope, date string) (model.UsageRecord, error)

	// IncrementUsage adds one extraction to the scope's counter for the
	// given date and returns the updated record. A stale record from a
	// prior date restarts at one.
	IncrementUsage(ctx context.Context, sc model.Scope, date string) (model.UsageRecord, error)
}

// HistoryRepository persists completed extraction results, partitioned by
// scope.
type HistoryRepository interface {
	SaveResult(ctx context.Context, sc model.Scope, result model.ExtractionResult) error
	GetResult(ctx context.Context, sc model.Scope, id string) (model.ExtractionResult, error)
	// ListResults returns the scope's results, most recent first.
	ListResults(ctx context.Context, sc model.Scope) ([]model.ExtractionResult, error)
	DeleteResult(ctx context.Context, sc model.Scope, id string) error
}
