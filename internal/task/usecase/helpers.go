package usecase

import (
	"context"
	"fmt"

	"todo-tracker/internal/model"
	"todo-tracker/internal/task"
)

// validIndex reports whether index addresses a task. Callers hold uc.mu.
func (uc *implUseCase) validIndex(index int) bool {
	return index >= 1 && index <= len(uc.tasks)
}

// toRow builds the presentation row for the task at 1-based index.
// The deadline status is computed now, never cached.
func (uc *implUseCase) toRow(index int, t model.Task) task.Row {
	return task.Row{
		Index:       index,
		Description: t.Description,
		Deadline:    t.Deadline,
		IsDone:      t.IsDone,
		Status:      uc.dateMath.Status(t.Deadline),
	}
}

// persist writes the store through the repository. Callers hold uc.mu.
func (uc *implUseCase) persist(ctx context.Context) error {
	snapshot := make([]model.Task, len(uc.tasks))
	copy(snapshot, uc.tasks)

	if err := uc.repo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("%w: %w", task.ErrSave, err)
	}
	return nil
}

// afterMutation saves when autosave is enabled. Callers hold uc.mu.
func (uc *implUseCase) afterMutation(ctx context.Context, op string) error {
	if !uc.autosave {
		return nil
	}
	if err := uc.persist(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.%s autosave: %v", op, err)
		return err
	}
	return nil
}
