package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"tasklens/internal/model"
)

// QuotaRepository is the persistent quota store. The upsert runs as one
// statement, so concurrent extraction calls serialize at the database and
// cannot both increment past the daily limit unseen.
type QuotaRepository struct {
	store *Store
}

// NewQuotaRepository creates a quota repository over the shared store.
func NewQuotaRepository(store *Store) *QuotaRepository {
	return &QuotaRepository{store: store}
}

// GetUsage returns the scope's record for date. Rows for other dates are
// ignored, never deleted; carryover is impossible because the date is part
// of the key.
func (r *QuotaRepository) GetUsage(ctx context.Context, sc model.Scope, date string) (model.UsageRecord, error) {
	var count int
	err := r.store.db.QueryRowContext(ctx,
		`SELECT count FROM usage WHERE user_id = ? AND date = ?`,
		sc.UserID, date,
	).Scan(&count)
	if err == sql.ErrNoRows {
		return model.UsageRecord{Date: date, Count: 0}, nil
	}
	if err != nil {
		return model.UsageRecord{}, fmt.Errorf("get usage: %w", err)
	}
	return model.UsageRecord{Date: date, Count: count}, nil
}

// IncrementUsage bumps the scope's counter for date and returns the new
// record.
func (r *QuotaRepository) IncrementUsage(ctx context.Context, sc model.Scope, date string) (model.UsageRecord, error) {
	var count int
	err := r.store.db.QueryRowContext(ctx,
		`INSERT INTO usage (user_id, date, count) VALUES (?, ?, 1)
		 ON CONFLICT(user_id, date) DO UPDATE SET count = count + 1
		 RETURNING count`,
		sc.UserID, date,
	).Scan(&count)
	if err != nil {
		return model.UsageRecord{}, fmt.Errorf("increment usage: %w", err)
	}
	return model.UsageRecord{Date: date, Count: count}, nil
}
