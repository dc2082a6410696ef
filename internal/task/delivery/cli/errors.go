package cli

import (
	"errors"
	"strings"

	"todo-tracker/internal/task"
)

// ErrorMessage returns the user-facing text for err, as printed by the menu.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrSave):
		return "Failed to save tasks: " + cause(err, task.ErrSave)
	case errors.Is(err, task.ErrLoad):
		return "Failed to load tasks: " + cause(err, task.ErrLoad)
	default:
		return err.Error()
	}
}

// cause strips the sentinel prefix added when the error was wrapped.
func cause(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
