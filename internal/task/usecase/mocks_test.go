package usecase_test

import (
	"context"

	"todo-tracker/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	stored    []model.Task
	saveCalls int
	saveErr   error
	loadErr   error
}

func (r *memRepo) Save(ctx context.Context, tasks []model.Task) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = append([]model.Task(nil), tasks...)
	return nil
}

func (r *memRepo) Load(ctx context.Context) ([]model.Task, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return append([]model.Task{}, r.stored...), nil
}
