package usecase

import (
	"context"
	"strings"

	"todo-tracker/internal/model"
	"todo-tracker/internal/task"
	"todo-tracker/pkg/datemath"
)

// View lists every task in store order.
func (uc *implUseCase) View(ctx context.Context) (task.ViewOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows := make([]task.Row, 0, len(uc.tasks))
	for i, t := range uc.tasks {
		rows = append(rows, uc.toRow(i+1, t))
	}

	return task.ViewOutput{
		Rows:  rows,
		Total: len(uc.tasks),
	}, nil
}

// Search performs a case-sensitive substring match on descriptions.
// Matching rows keep their store index.
func (uc *implUseCase) Search(ctx context.Context, input task.SearchInput) (task.SearchOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows := make([]task.Row, 0)
	for i, t := range uc.tasks {
		if strings.Contains(t.Description, input.Keyword) {
			rows = append(rows, uc.toRow(i+1, t))
		}
	}

	if len(rows) == 0 {
		uc.l.Debugf(ctx, "uc.Search: no results for keyword %q among %d tasks", input.Keyword, len(uc.tasks))
	}

	return task.SearchOutput{
		Keyword: input.Keyword,
		Rows:    rows,
		Count:   len(rows),
		Total:   len(uc.tasks),
	}, nil
}

// Stats counts tasks by completion and deadline status.
func (uc *implUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := task.StatsOutput{Total: len(uc.tasks)}
	for _, t := range uc.tasks {
		if t.IsDone {
			out.Done++
		} else {
			out.Pending++
		}

		switch uc.dateMath.Status(t.Deadline) {
		case datemath.StatusOverdue:
			out.Overdue++
		case datemath.StatusDueToday:
			out.DueToday++
		case datemath.StatusUpcoming:
			out.Upcoming++
		default:
			out.Invalid++
		}
	}
	return out, nil
}

// Snapshot returns a copy of the store.
func (uc *implUseCase) Snapshot(ctx context.Context) []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.Task, len(uc.tasks))
	copy(out, uc.tasks)
	return out
}
