package usecase

import (
	"sync"

	"todo-tracker/internal/model"
	"todo-tracker/internal/task"
	"todo-tracker/internal/task/repository"
	"todo-tracker/pkg/datemath"
	pkgLog "todo-tracker/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	autosave bool

	mu    sync.Mutex
	tasks []model.Task
}

// Options tunes optional behavior of the use case.
type Options struct {
	// Autosave persists the store after every successful mutation.
	Autosave bool
}

// New creates a new task UseCase instance with an empty store.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	opt Options,
) task.UseCase {
	if dateMath == nil {
		dateMath = datemath.NewParser(nil)
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		autosave: opt.Autosave,
		tasks:    []model.Task{},
	}
}
