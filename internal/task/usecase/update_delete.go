package usecase

import (
	"context"
	"slices"

	"todo-tracker/internal/task"
)

// MarkDone flags the task at index as done. Marking a done task again succeeds.
func (uc *implUseCase) MarkDone(ctx context.Context, index int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.validIndex(index) {
		uc.l.Warnf(ctx, "uc.MarkDone: index %d out of range [1, %d]", index, len(uc.tasks))
		return task.ErrInvalidIndex
	}

	uc.tasks[index-1].IsDone = true
	uc.l.Debugf(ctx, "uc.MarkDone: task %d", index)

	return uc.afterMutation(ctx, "MarkDone")
}

// Delete removes the task at index. Later tasks move down by one position.
func (uc *implUseCase) Delete(ctx context.Context, index int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.validIndex(index) {
		uc.l.Warnf(ctx, "uc.Delete: index %d out of range [1, %d]", index, len(uc.tasks))
		return task.ErrInvalidIndex
	}

	uc.tasks = slices.Delete(uc.tasks, index-1, index)
	uc.l.Debugf(ctx, "uc.Delete: task %d, %d remaining", index, len(uc.tasks))

	return uc.afterMutation(ctx, "Delete")
}
