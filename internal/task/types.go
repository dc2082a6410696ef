package task

import (
	"todo-tracker/internal/model"
	"todo-tracker/pkg/datemath"
)

// AddInput is the input for adding a task.
type AddInput struct {
	Description string
	Deadline    string // DD/MM/YYYY
}

// AddOutput is the result of adding a task.
type AddOutput struct {
	Index int // 1-based position of the new task
	Task  model.Task
}

// Row is a task as presented to the user.
type Row struct {
	Index       int
	Description string
	Deadline    string
	IsDone      bool
	Status      datemath.Status
}

// DoneLabel renders the completion flag.
func (r Row) DoneLabel() string {
	if r.IsDone {
		return "Done"
	}
	return "Pending"
}

// ViewOutput is the result of listing the store.
type ViewOutput struct {
	Rows  []Row
	Total int
}

// IsEmpty reports whether the store holds no tasks at all.
func (o ViewOutput) IsEmpty() bool {
	return o.Total == 0
}

// SearchInput is the input for keyword search.
type SearchInput struct {
	Keyword string
}

// SearchOutput is the result of keyword search.
// Total is the store size, so an empty store and a search without matches stay distinguishable.
type SearchOutput struct {
	Keyword string
	Rows    []Row
	Count   int
	Total   int
}

// NoMatches reports whether the store has tasks but none matched.
func (o SearchOutput) NoMatches() bool {
	return o.Total > 0 && o.Count == 0
}

// StatsOutput counts tasks by completion and deadline status.
type StatsOutput struct {
	Total    int
	Done     int
	Pending  int
	Overdue  int
	DueToday int
	Upcoming int
	Invalid  int
}
