package usecase

import (
	"context"

	"todo-tracker/internal/model"
	"todo-tracker/internal/task"
	"todo-tracker/pkg/datemath"
)

// Add appends a pending task after validating its deadline.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.AddOutput, error) {
	if !datemath.Valid(input.Deadline) {
		uc.l.Warnf(ctx, "uc.Add: rejected deadline %q", input.Deadline)
		return task.AddOutput{}, task.ErrInvalidDateFormat
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	t := model.Task{
		Description: input.Description,
		Deadline:    input.Deadline,
		IsDone:      false,
	}
	uc.tasks = append(uc.tasks, t)
	index := len(uc.tasks)

	uc.l.Debugf(ctx, "uc.Add: task %d %q due %s", index, t.Description, t.Deadline)

	if err := uc.afterMutation(ctx, "Add"); err != nil {
		return task.AddOutput{Index: index, Task: t}, err
	}
	return task.AddOutput{Index: index, Task: t}, nil
}
