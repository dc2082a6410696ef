package repository

import (
	"context"

	"todo-tracker/internal/model"
)

// Repository persists the whole task list at once.
type Repository interface {
	// Save replaces the stored list with tasks, in order.
	Save(ctx context.Context, tasks []model.Task) error
	// Load returns the stored list in order. A missing store yields an empty list.
	Load(ctx context.Context) ([]model.Task, error)
}
