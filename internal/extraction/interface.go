package extraction

import (
	"context"

	"tasklens/internal/model"
)

// UseCase defines the business logic interface for the extraction feature.
// It is the single entry point the delivery layer consumes.
type UseCase interface {
	// Extract runs the full pipeline for one page: quota gate, key check,
	// prompt build, provider call, normalization, quota commit, history
	// save. Atomic from the caller's view: full success or untouched quota.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Usage reports today's extraction count against the daily limit.
	Usage(ctx context.Context, sc model.Scope) (UsageOutput, error)

	// ListResults returns the scope's extraction history, most recent first.
	ListResults(ctx context.Context, sc model.Scope) ([]model.ExtractionResult, error)

	// GetResult returns one extraction result, reflecting any edits made
	// through the edit session.
	GetResult(ctx context.Context, sc model.Scope, id string) (model.ExtractionResult, error)

	// DeleteResult removes a result and closes its edit session.
	DeleteResult(ctx context.Context, sc model.Scope, id string) error

	// UpdateTask applies a partial edit to one task of a result.
	UpdateTask(ctx context.Context, sc model.Scope, resultID, taskID string, input UpdateTaskInput) (model.ExtractionResult, error)

	// RemoveTask deletes one task from a result.
	RemoveTask(ctx context.Context, sc model.Scope, resultID, taskID string) (model.ExtractionResult, error)

	// ToggleTask flips one task's export selection.
	ToggleTask(ctx context.Context, sc model.Scope, resultID, taskID string) (model.ExtractionResult, error)

	// UndoEdit reverts the most recent edit on a result.
	UndoEdit(ctx context.Context, sc model.Scope, resultID string) (model.ExtractionResult, error)

	// CanUndo reports whether the result has edits left to revert.
	CanUndo(ctx context.Context, sc model.Scope, resultID string) bool
}
