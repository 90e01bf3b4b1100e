package usecase

import (
	"context"
	"errors"
	"fmt"

	"tasklens/internal/extraction"
	"tasklens/internal/extraction/repository"
	"tasklens/internal/model"
)

// ListResults returns the scope's extraction history, most recent first.
func (uc *implUseCase) ListResults(ctx context.Context, sc model.Scope) ([]model.ExtractionResult, error) {
	results, err := uc.history.ListResults(ctx, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// GetResult returns one result. An open edit session shadows the stored
// task list, so callers always see the reviewed state.
func (uc *implUseCase) GetResult(ctx context.Context, sc model.Scope, id string) (model.ExtractionResult, error) {
	result, err := uc.history.GetResult(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ExtractionResult{}, extraction.ErrResultNotFound
		}
		return model.ExtractionResult{}, fmt.Errorf("failed to get result: %w", err)
	}

	if session, ok := uc.editor.Peek(id); ok {
		result.Tasks = session.Tasks()
	}
	return result, nil
}

// DeleteResult removes a result and closes its edit session.
func (uc *implUseCase) DeleteResult(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.history.DeleteResult(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return extraction.ErrResultNotFound
		}
		return fmt.Errorf("failed to delete result: %w", err)
	}
	uc.editor.Drop(id)
	return nil
}
