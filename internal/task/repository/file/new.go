package file

import (
	"fmt"

	"todo-tracker/internal/task/repository"
	"todo-tracker/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
}

// New creates a flat-file Repository storing one task per line at opt.Path.
func New(opt repository.FileOptions, l log.Logger) repository.Repository {
	if opt.Path == "" {
		panic("task/repository/file: path is required")
	}
	return &implRepository{path: opt.Path, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/file.%s", method)
}
