package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidIndex      = errors.New("invalid task number")
	ErrSave              = errors.New("failed to save tasks")
	ErrLoad              = errors.New("failed to load tasks")
)

// Messages shown when a listing has nothing to show.
const (
	MessageNoTasks   = "No tasks available."
	MessageNoMatches = "No tasks found with keyword: "
)
