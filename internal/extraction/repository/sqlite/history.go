package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"tasklens/internal/extraction/repository"
	"tasklens/internal/model"
)

// HistoryRepository is the persistent result store. Task lists are stored
// as a JSON column; results are only ever read whole, never queried by
// task field.
type HistoryRepository struct {
	store *Store
}

// NewHistoryRepository creates a history repository over the shared store.
func NewHistoryRepository(store *Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// SaveResult stores or replaces a result for the scope.
func (r *HistoryRepository) SaveResult(ctx context.Context, sc model.Scope, result model.ExtractionResult) error {
	tasksJSON, err := json.Marshal(result.Tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	_, err = r.store.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO results (id, user_id, url, title, tasks, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.ID, sc.UserID, result.URL, result.Title, string(tasksJSON),
		result.CompletedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// GetResult returns the scope's result by id.
func (r *HistoryRepository) GetResult(ctx context.Context, sc model.Scope, id string) (model.ExtractionResult, error) {
	row := r.store.db.QueryRowContext(ctx,
		`SELECT id, url, title, tasks, completed_at FROM results
		 WHERE user_id = ? AND id = ?`,
		sc.UserID, id,
	)
	result, err := scanResult(row)
	if err == sql.ErrNoRows {
		return model.ExtractionResult{}, repository.ErrNotFound
	}
	if err != nil {
		return model.ExtractionResult{}, fmt.Errorf("get result: %w", err)
	}
	return result, nil
}

// ListResults returns the scope's results, most recent first.
func (r *HistoryRepository) ListResults(ctx context.Context, sc model.Scope) ([]model.ExtractionResult, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, url, title, tasks, completed_at FROM results
		 WHERE user_id = ? ORDER BY completed_at DESC`,
		sc.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []model.ExtractionResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// DeleteResult removes the scope's result by id.
func (r *HistoryRepository) DeleteResult(ctx context.Context, sc model.Scope, id string) error {
	res, err := r.store.db.ExecContext(ctx,
		`DELETE FROM results WHERE user_id = ? AND id = ?`,
		sc.UserID, id,
	)
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (model.ExtractionResult, error) {
	var (
		result      model.ExtractionResult
		tasksJSON   string
		completedAt string
	)
	if err := row.Scan(&result.ID, &result.URL, &result.Title, &tasksJSON, &completedAt); err != nil {
		return model.ExtractionResult{}, err
	}

	if err := json.Unmarshal([]byte(tasksJSON), &result.Tasks); err != nil {
		return model.ExtractionResult{}, fmt.Errorf("unmarshal tasks: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, completedAt)
	if err != nil {
		return model.ExtractionResult{}, fmt.Errorf("parse completed_at: %w", err)
	}
	result.CompletedAt = ts
	return result, nil
}
