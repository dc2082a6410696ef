package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"todo-tracker/internal/model"
	"todo-tracker/internal/task/repository"
)

// Save truncates the file and writes one line per task.
func (r *implRepository) Save(ctx context.Context, tasks []model.Task) error {
	f, err := os.Create(r.path)
	if err != nil {
		r.l.Errorf(ctx, "%s create %s: %v", r.dsn("Save"), r.path, err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToSave, err)
	}

	w := bufio.NewWriter(f)
	for _, t := range tasks {
		if _, err := w.WriteString(encodeLine(t) + "\n"); err != nil {
			_ = f.Close()
			r.l.Errorf(ctx, "%s write: %v", r.dsn("Save"), err)
			return fmt.Errorf("%w: %w", repository.ErrFailedToSave, err)
		}
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		r.l.Errorf(ctx, "%s flush: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToSave, err)
	}
	if err := f.Close(); err != nil {
		r.l.Errorf(ctx, "%s close: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToSave, err)
	}

	r.l.Debugf(ctx, "%s: wrote %d tasks to %s", r.dsn("Save"), len(tasks), r.path)
	return nil
}

// Load reads the file line by line. A missing file is an empty store, not an error.
func (r *implRepository) Load(ctx context.Context) ([]model.Task, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.l.Infof(ctx, "%s: %s does not exist, starting empty", r.dsn("Load"), r.path)
		return []model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s open %s: %v", r.dsn("Load"), r.path, err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToLoad, err)
	}
	defer f.Close()

	tasks, skipped, err := readTasks(f)
	if err != nil {
		r.l.Errorf(ctx, "%s read: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToLoad, err)
	}
	if skipped > 0 {
		r.l.Debugf(ctx, "%s: skipped %d malformed lines", r.dsn("Load"), skipped)
	}

	r.l.Debugf(ctx, "%s: read %d tasks from %s", r.dsn("Load"), len(tasks), r.path)
	return tasks, nil
}

// readTasks decodes every line of rd. Only '\n' ends a line, so a trailing '\r' stays part
// of the done flag.
func readTasks(rd io.Reader) ([]model.Task, int, error) {
	br := bufio.NewReader(rd)
	tasks := []model.Task{}
	skipped := 0

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, 0, err
		}

		line = strings.TrimSuffix(line, "\n")
		if line != "" {
			if t, ok := decodeLine(line); ok {
				tasks = append(tasks, t)
			} else {
				skipped++
			}
		}

		if errors.Is(err, io.EOF) {
			return tasks, skipped, nil
		}
	}
}
