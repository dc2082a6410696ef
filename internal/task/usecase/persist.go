package usecase

import (
	"context"
	"fmt"

	"todo-tracker/internal/task"
)

// Save writes the whole store through the repository.
func (uc *implUseCase) Save(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.persist(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.Save: %v", err)
		return err
	}

	uc.l.Infof(ctx, "uc.Save: saved %d tasks", len(uc.tasks))
	return nil
}

// Load replaces the store with the repository content.
// On failure the current store is left untouched.
func (uc *implUseCase) Load(ctx context.Context) error {
	tasks, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load: %v", err)
		return fmt.Errorf("%w: %w", task.ErrLoad, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.tasks = tasks
	uc.l.Infof(ctx, "uc.Load: loaded %d tasks", len(uc.tasks))
	return nil
}
