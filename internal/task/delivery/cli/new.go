package cli

import (
	"bufio"
	"context"
	"io"

	"todo-tracker/internal/task"
	pkgLog "todo-tracker/pkg/log"
)

// Handler is the interface for the interactive menu delivery.
type Handler interface {
	// Run serves menu selections until the user exits or input ends.
	// The store is saved before Run returns.
	Run(ctx context.Context) error
}

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	in  *bufio.Reader
	out io.Writer
}

// New creates a new interactive menu handler reading from in and writing to out.
// Input lines have no length limit.
func New(l pkgLog.Logger, uc task.UseCase, in io.Reader, out io.Writer) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		in:  bufio.NewReader(in),
		out: out,
	}
}
