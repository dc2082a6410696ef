package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo-tracker/internal/model"
	"todo-tracker/internal/task"
	"todo-tracker/internal/task/usecase"
	"todo-tracker/pkg/datemath"
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

func newUseCase(repo *memRepo, opt usecase.Options) task.UseCase {
	parser := datemath.NewParser(func() time.Time { return fixedNow })
	return usecase.New(&mockLogger{}, repo, parser, opt)
}

func seed(t *testing.T, uc task.UseCase, tasks ...task.AddInput) {
	t.Helper()
	for _, in := range tasks {
		if _, err := uc.Add(context.Background(), in); err != nil {
			t.Fatalf("seed Add(%+v): %v", in, err)
		}
	}
}

func descriptions(rows []task.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Description
	}
	return out
}

func deadlines(rows []task.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Deadline
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		deadline string
		wantErr  error
	}{
		{name: "Valid", deadline: "01/01/2030"},
		{name: "Calendar nonsense accepted", deadline: "31/02/2024"},
		{name: "ISO rejected", deadline: "2024-02-31", wantErr: task.ErrInvalidDateFormat},
		{name: "Empty rejected", deadline: "", wantErr: task.ErrInvalidDateFormat},
		{name: "Non numeric rejected", deadline: "aa/bb/cccc", wantErr: task.ErrInvalidDateFormat},
		{name: "Padded rejected", deadline: " 01/01/2030", wantErr: task.ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&memRepo{}, usecase.Options{})
			out, err := uc.Add(ctx, task.AddInput{Description: "x", Deadline: tt.deadline})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}

			view, _ := uc.View(ctx)
			if tt.wantErr != nil {
				if view.Total != 0 {
					t.Errorf("rejected task was stored")
				}
				return
			}
			if out.Index != 1 || out.Task.IsDone {
				t.Errorf("unexpected output %+v", out)
			}
			if view.Total != 1 {
				t.Errorf("expected 1 task, got %d", view.Total)
			}
		})
	}
}

func TestView(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store", func(t *testing.T) {
		uc := newUseCase(&memRepo{}, usecase.Options{})
		out, err := uc.View(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.IsEmpty() || len(out.Rows) != 0 {
			t.Errorf("expected empty view, got %+v", out)
		}
	})

	t.Run("Add then view", func(t *testing.T) {
		uc := newUseCase(&memRepo{}, usecase.Options{})
		seed(t, uc, task.AddInput{Description: "Walk dog", Deadline: "30/04/2024"})

		before, _ := uc.View(ctx)
		seed(t, uc, task.AddInput{Description: "Buy milk", Deadline: "01/01/2030"})
		after, _ := uc.View(ctx)

		if len(after.Rows) != len(before.Rows)+1 {
			t.Fatalf("expected row count to grow by one, %d -> %d", len(before.Rows), len(after.Rows))
		}
		last := after.Rows[len(after.Rows)-1]
		if last.Description != "Buy milk" || last.Index != 2 {
			t.Errorf("unexpected new row %+v", last)
		}
		if last.DoneLabel() != "Pending" {
			t.Errorf("expected Pending, got %s", last.DoneLabel())
		}
	})

	t.Run("Live status", func(t *testing.T) {
		uc := newUseCase(&memRepo{}, usecase.Options{})
		seed(t, uc,
			task.AddInput{Description: "a", Deadline: "30/04/2024"},
			task.AddInput{Description: "b", Deadline: "01/05/2024"},
			task.AddInput{Description: "c", Deadline: "02/05/2024"},
		)
		out, _ := uc.View(ctx)
		want := []datemath.Status{datemath.StatusOverdue, datemath.StatusDueToday, datemath.StatusUpcoming}
		for i, row := range out.Rows {
			if row.Status != want[i] {
				t.Errorf("row %d: status %s, want %s", i+1, row.Status, want[i])
			}
		}
	})
}

func TestMarkDone(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(&memRepo{}, usecase.Options{})
	seed(t, uc,
		task.AddInput{Description: "a", Deadline: "01/01/2030"},
		task.AddInput{Description: "b", Deadline: "01/01/2030"},
	)

	for _, idx := range []int{0, -1, 3} {
		if err := uc.MarkDone(ctx, idx); !errors.Is(err, task.ErrInvalidIndex) {
			t.Errorf("MarkDone(%d): expected ErrInvalidIndex, got %v", idx, err)
		}
	}

	if err := uc.MarkDone(ctx, 2); err != nil {
		t.Fatalf("MarkDone(2): %v", err)
	}
	if err := uc.MarkDone(ctx, 2); err != nil {
		t.Fatalf("MarkDone(2) twice should succeed: %v", err)
	}

	out, _ := uc.View(ctx)
	if out.Rows[0].IsDone || !out.Rows[1].IsDone {
		t.Errorf("unexpected done flags: %+v", out.Rows)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(&memRepo{}, usecase.Options{})
	seed(t, uc,
		task.AddInput{Description: "first", Deadline: "01/01/2030"},
		task.AddInput{Description: "second", Deadline: "01/01/2030"},
		task.AddInput{Description: "third", Deadline: "01/01/2030"},
	)

	if err := uc.Delete(ctx, 4); !errors.Is(err, task.ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
	if err := uc.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete(2): %v", err)
	}

	out, _ := uc.View(ctx)
	if !equal(descriptions(out.Rows), []string{"first", "third"}) {
		t.Fatalf("unexpected tasks after delete: %v", descriptions(out.Rows))
	}
	if out.Rows[0].Index != 1 || out.Rows[1].Index != 2 {
		t.Errorf("rows were not reindexed: %+v", out.Rows)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store", func(t *testing.T) {
		uc := newUseCase(&memRepo{}, usecase.Options{})
		out, err := uc.Search(ctx, task.SearchInput{Keyword: "milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 0 || out.NoMatches() {
			t.Errorf("empty store must not report no matches: %+v", out)
		}
	})

	t.Run("No matches", func(t *testing.T) {
		uc := newUseCase(&memRepo{}, usecase.Options{})
		seed(t, uc, task.AddInput{Description: "Walk dog", Deadline: "01/01/2030"})
		out, _ := uc.Search(ctx, task.SearchInput{Keyword: "milk"})
		if !out.NoMatches() || out.Count != 0 || out.Total != 1 {
			t.Errorf("expected no matches among 1 task, got %+v", out)
		}
	})

	t.Run("Case sensitive and keeps indices", func(t *testing.T) {
		uc := newUseCase(&memRepo{}, usecase.Options{})
		seed(t, uc,
			task.AddInput{Description: "Buy Milk", Deadline: "01/01/2030"},
			task.AddInput{Description: "Walk dog", Deadline: "01/01/2030"},
			task.AddInput{Description: "buy milk again", Deadline: "01/01/2030"},
			task.AddInput{Description: "milkshake", Deadline: "01/01/2030"},
		)
		out, _ := uc.Search(ctx, task.SearchInput{Keyword: "milk"})
		if out.Count != 2 {
			t.Fatalf("expected 2 matches, got %d", out.Count)
		}
		if out.Rows[0].Index != 3 || out.Rows[1].Index != 4 {
			t.Errorf("unexpected indices: %+v", out.Rows)
		}
	})

	t.Run("Deadline not searched", func(t *testing.T) {
		uc := newUseCase(&memRepo{}, usecase.Options{})
		seed(t, uc, task.AddInput{Description: "x", Deadline: "01/01/2030"})
		out, _ := uc.Search(ctx, task.SearchInput{Keyword: "2030"})
		if out.Count != 0 {
			t.Errorf("deadline must not be searched")
		}
	})
}

func TestSort(t *testing.T) {
	ctx := context.Background()

	t.Run("By deadline", func(t *testing.T) {
		uc := newUseCase(&memRepo{}, usecase.Options{})
		seed(t, uc,
			task.AddInput{Description: "a", Deadline: "10/05/2023"},
			task.AddInput{Description: "b", Deadline: "01/01/2023"},
			task.AddInput{Description: "c", Deadline: "15/03/2023"},
		)
		if err := uc.SortByDeadline(ctx); err != nil {
			t.Fatalf("SortByDeadline: %v", err)
		}
		out, _ := uc.View(ctx)
		want := []string{"01/01/2023", "15/03/2023", "10/05/2023"}
		if !equal(deadlines(out.Rows), want) {
			t.Errorf("got %v, want %v", deadlines(out.Rows), want)
		}
	})

	t.Run("Invalid deadlines first", func(t *testing.T) {
		repo := &memRepo{stored: []model.Task{
			{Description: "valid", Deadline: "01/01/2023"},
			{Description: "broken", Deadline: "someday"},
		}}
		uc := newUseCase(repo, usecase.Options{})
		if err := uc.Load(ctx); err != nil {
			t.Fatalf("Load: %v", err)
		}
		_ = uc.SortByDeadline(ctx)
		out, _ := uc.View(ctx)
		if out.Rows[0].Description != "broken" {
			t.Errorf("expected invalid deadline first, got %v", descriptions(out.Rows))
		}
	})

	t.Run("Alphabetically", func(t *testing.T) {
		uc := newUseCase(&memRepo{}, usecase.Options{})
		seed(t, uc,
			task.AddInput{Description: "banana", Deadline: "01/01/2030"},
			task.AddInput{Description: "Cherry", Deadline: "01/01/2030"},
			task.AddInput{Description: "apple", Deadline: "01/01/2030"},
		)
		_ = uc.SortAlphabetically(ctx)
		out, _ := uc.View(ctx)
		want := []string{"Cherry", "apple", "banana"}
		if !equal(descriptions(out.Rows), want) {
			t.Errorf("got %v, want %v", descriptions(out.Rows), want)
		}
	})
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		repo := &memRepo{}
		uc := newUseCase(repo, usecase.Options{})
		seed(t, uc,
			task.AddInput{Description: "a", Deadline: "01/01/2030"},
			task.AddInput{Description: "b", Deadline: "02/02/2030"},
		)
		_ = uc.MarkDone(ctx, 2)

		if err := uc.Save(ctx); err != nil {
			t.Fatalf("Save: %v", err)
		}

		other := newUseCase(repo, usecase.Options{})
		if err := other.Load(ctx); err != nil {
			t.Fatalf("Load: %v", err)
		}
		got := other.Snapshot(ctx)
		want := uc.Snapshot(ctx)
		if len(got) != len(want) {
			t.Fatalf("expected %d tasks, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("task %d: got %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("Save error surfaced", func(t *testing.T) {
		repo := &memRepo{saveErr: errors.New("disk full")}
		uc := newUseCase(repo, usecase.Options{})
		if err := uc.Save(ctx); !errors.Is(err, task.ErrSave) {
			t.Errorf("expected ErrSave, got %v", err)
		}
	})

	t.Run("Load error keeps store", func(t *testing.T) {
		repo := &memRepo{}
		uc := newUseCase(repo, usecase.Options{})
		seed(t, uc, task.AddInput{Description: "keep", Deadline: "01/01/2030"})

		repo.loadErr = errors.New("permission denied")
		if err := uc.Load(ctx); !errors.Is(err, task.ErrLoad) {
			t.Fatalf("expected ErrLoad, got %v", err)
		}
		if len(uc.Snapshot(ctx)) != 1 {
			t.Errorf("store changed after failed load")
		}
	})

	t.Run("Load replaces store", func(t *testing.T) {
		repo := &memRepo{stored: []model.Task{{Description: "from disk", Deadline: "01/01/2030", IsDone: true}}}
		uc := newUseCase(repo, usecase.Options{})
		seed(t, uc, task.AddInput{Description: "in memory", Deadline: "01/01/2030"})

		_ = uc.Load(ctx)
		snap := uc.Snapshot(ctx)
		if len(snap) != 1 || snap[0].Description != "from disk" || !snap[0].IsDone {
			t.Errorf("unexpected store after load: %+v", snap)
		}
	})
}

func TestAutosave(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	uc := newUseCase(repo, usecase.Options{Autosave: true})

	seed(t, uc, task.AddInput{Description: "a", Deadline: "01/01/2030"})
	_ = uc.MarkDone(ctx, 1)
	_ = uc.MarkDone(ctx, 5)

	if repo.saveCalls != 2 {
		t.Errorf("expected 2 saves, got %d", repo.saveCalls)
	}
	if len(repo.stored) != 1 || !repo.stored[0].IsDone {
		t.Errorf("unexpected stored tasks %+v", repo.stored)
	}

	repo.saveErr = errors.New("read-only")
	if err := uc.Delete(ctx, 1); !errors.Is(err, task.ErrSave) {
		t.Errorf("expected autosave failure to surface as ErrSave, got %v", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(&memRepo{}, usecase.Options{})
	seed(t, uc,
		task.AddInput{Description: "a", Deadline: "30/04/2024"},
		task.AddInput{Description: "b", Deadline: "01/05/2024"},
		task.AddInput{Description: "c", Deadline: "02/05/2024"},
		task.AddInput{Description: "d", Deadline: "03/05/2024"},
	)
	_ = uc.MarkDone(ctx, 1)

	out, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := task.StatsOutput{Total: 4, Done: 1, Pending: 3, Overdue: 1, DueToday: 1, Upcoming: 2}
	if out != want {
		t.Errorf("Stats() = %+v, want %+v", out, want)
	}
}
