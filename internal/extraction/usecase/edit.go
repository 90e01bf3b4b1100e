package usecase

import (
	"context"
	"errors"
	"fmt"

	"tasklens/internal/editor"
	"tasklens/internal/extraction"
	"tasklens/internal/extraction/repository"
	"tasklens/internal/model"
)

// UpdateTask applies a partial edit to one task of a result.
func (uc *implUseCase) UpdateTask(ctx context.Context, sc model.Scope, resultID, taskID string, input extraction.UpdateTaskInput) (model.ExtractionResult, error) {
	session, result, err := uc.sessionFor(ctx, sc, resultID)
	if err != nil {
		return model.ExtractionResult{}, err
	}

	patch := editor.TaskPatch{
		Title:        input.Title,
		Description:  input.Description,
		Priority:     input.Priority,
		Category:     input.Category,
		Assignee:     input.Assignee,
		DueDate:      input.DueDate,
		TimeEstimate: input.TimeEstimate,
		Selected:     input.Selected,
	}
	if err := session.Update(taskID, patch); err != nil {
		return model.ExtractionResult{}, err
	}

	return uc.persistSession(ctx, sc, result, session)
}

// RemoveTask deletes one task from a result.
func (uc *implUseCase) RemoveTask(ctx context.Context, sc model.Scope, resultID, taskID string) (model.ExtractionResult, error) {
	session, result, err := uc.sessionFor(ctx, sc, resultID)
	if err != nil {
		return model.ExtractionResult{}, err
	}

	if err := session.Remove(taskID); err != nil {
		return model.ExtractionResult{}, err
	}

	return uc.persistSession(ctx, sc, result, session)
}

// ToggleTask flips one task's export selection.
func (uc *implUseCase) ToggleTask(ctx context.Context, sc model.Scope, resultID, taskID string) (model.ExtractionResult, error) {
	session, result, err := uc.sessionFor(ctx, sc, resultID)
	if err != nil {
		return model.ExtractionResult{}, err
	}

	if err := session.ToggleSelected(taskID); err != nil {
		return model.ExtractionResult{}, err
	}

	return uc.persistSession(ctx, sc, result, session)
}

// CanUndo reports whether the result's edit session has snapshots left.
// A result with no open session has nothing to revert.
func (uc *implUseCase) CanUndo(ctx context.Context, sc model.Scope, resultID string) bool {
	session, ok := uc.editor.Peek(resultID)
	if !ok {
		return false
	}
	return session.CanUndo()
}

// UndoEdit reverts the most recent edit on a result.
func (uc *implUseCase) UndoEdit(ctx context.Context, sc model.Scope, resultID string) (model.ExtractionResult, error) {
	session, result, err := uc.sessionFor(ctx, sc, resultID)
	if err != nil {
		return model.ExtractionResult{}, err
	}

	if err := session.Undo(); err != nil {
		return model.ExtractionResult{}, err
	}

	return uc.persistSession(ctx, sc, result, session)
}

// sessionFor loads the result and opens (or resumes) its edit session.
func (uc *implUseCase) sessionFor(ctx context.Context, sc model.Scope, resultID string) (*editor.Session, model.ExtractionResult, error) {
	result, err := uc.history.GetResult(ctx, sc, resultID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, model.ExtractionResult{}, extraction.ErrResultNotFound
		}
		return nil, model.ExtractionResult{}, fmt.Errorf("failed to get result: %w", err)
	}

	session, err := uc.editor.Session(resultID, func() (*editor.Session, error) {
		return editor.NewSession(result.Tasks), nil
	})
	if err != nil {
		return nil, model.ExtractionResult{}, err
	}
	return session, result, nil
}

// persistSession writes the session's current task list back to history so
// edits survive restarts of the backing store.
func (uc *implUseCase) persistSession(ctx context.Context, sc model.Scope, result model.ExtractionResult, session *editor.Session) (model.ExtractionResult, error) {
	result.Tasks = session.Tasks()
	if err := uc.history.SaveResult(ctx, sc, result); err != nil {
		uc.l.Warnf(ctx, "persistSession: user=%s failed to save result %s: %v", sc.UserID, result.ID, err)
	}
	return result, nil
}
