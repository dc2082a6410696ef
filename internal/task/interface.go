package task

import (
	"context"

	"todo-tracker/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Tasks are addressed by their 1-based position in the store.
type UseCase interface {
	// Add appends a pending task. It returns ErrInvalidDateFormat when the deadline is not DD/MM/YYYY.
	Add(ctx context.Context, input AddInput) (AddOutput, error)

	// View lists every task in store order with its live deadline status.
	View(ctx context.Context) (ViewOutput, error)

	// Search lists tasks whose description contains the keyword (case-sensitive).
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// MarkDone flags the task at index as done. It returns ErrInvalidIndex when out of range.
	MarkDone(ctx context.Context, index int) error

	// Delete removes the task at index, shifting later tasks down by one.
	Delete(ctx context.Context, index int) error

	SortAlphabetically(ctx context.Context) error
	SortByDeadline(ctx context.Context) error

	// Stats summarizes the store by completion and deadline status.
	Stats(ctx context.Context) (StatsOutput, error)

	// Save writes the store to the repository.
	Save(ctx context.Context) error

	// Load replaces the store with the repository content.
	Load(ctx context.Context) error

	// Snapshot returns a copy of the store in order.
	Snapshot(ctx context.Context) []model.Task
}
