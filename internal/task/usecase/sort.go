package usecase

import (
	"context"
	"slices"
	"strings"

	"todo-tracker/internal/model"
	"todo-tracker/pkg/datemath"
)

// SortAlphabetically orders the store by description, byte-wise ascending.
func (uc *implUseCase) SortAlphabetically(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	slices.SortStableFunc(uc.tasks, func(a, b model.Task) int {
		return strings.Compare(a.Description, b.Description)
	})
	uc.l.Debugf(ctx, "uc.SortAlphabetically: %d tasks", len(uc.tasks))

	return uc.afterMutation(ctx, "SortAlphabetically")
}

// SortByDeadline orders the store by deadline. Invalid deadlines come first.
func (uc *implUseCase) SortByDeadline(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	slices.SortStableFunc(uc.tasks, func(a, b model.Task) int {
		return datemath.Compare(a.Deadline, b.Deadline)
	})
	uc.l.Debugf(ctx, "uc.SortByDeadline: %d tasks", len(uc.tasks))

	return uc.afterMutation(ctx, "SortByDeadline")
}
