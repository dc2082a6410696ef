package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todo-tracker/internal/task"
)

// Run shows the menu and dispatches one operation per selection.
// Operation failures are reported and the loop continues.
func (h *handler) Run(ctx context.Context) error {
	h.printSummary(ctx)

	for {
		fmt.Fprint(h.out, menuText)
		line, ok := h.prompt("Enter your choice: ")
		if !ok {
			h.l.Info(ctx, "cli: input closed, exiting")
			return h.exit(ctx)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			h.println(msgInvalidChoice)
			continue
		}

		if choice == choiceExit {
			return h.exit(ctx)
		}
		if !h.dispatch(ctx, choice) {
			h.l.Info(ctx, "cli: input closed, exiting")
			return h.exit(ctx)
		}
	}
}

// dispatch runs a single menu selection. It reports false when input ended mid-prompt.
func (h *handler) dispatch(ctx context.Context, choice int) bool {
	switch choice {
	case choiceAdd:
		return h.add(ctx)
	case choiceView:
		h.view(ctx)
	case choiceMarkDone:
		return h.markDone(ctx)
	case choiceDelete:
		return h.delete(ctx)
	case choiceSearch:
		return h.search(ctx)
	case choiceSortAlpha:
		h.report(ctx, "SortAlphabetically", h.uc.SortAlphabetically(ctx), msgSortedAlpha)
	case choiceSortDeadline:
		h.report(ctx, "SortByDeadline", h.uc.SortByDeadline(ctx), msgSortedDue)
	case choiceSave:
		h.save(ctx)
	default:
		h.println(msgInvalidChoice)
	}
	return true
}

func (h *handler) add(ctx context.Context) bool {
	desc, ok := h.prompt("Enter task description: ")
	if !ok {
		return false
	}
	deadline, ok := h.prompt("Enter deadline (DD/MM/YYYY): ")
	if !ok {
		return false
	}

	_, err := h.uc.Add(ctx, task.AddInput{Description: desc, Deadline: deadline})
	switch {
	case errors.Is(err, task.ErrInvalidDateFormat):
		h.println(msgInvalidDate)
	case err != nil:
		h.l.Errorf(ctx, "cli: uc.Add: %v", err)
		h.println(ErrorMessage(err))
	default:
		h.println(msgAdded)
	}
	return true
}

func (h *handler) view(ctx context.Context) {
	out, err := h.uc.View(ctx)
	if err != nil {
		h.l.Errorf(ctx, "cli: uc.View: %v", err)
		h.println(ErrorMessage(err))
		return
	}

	h.println("\n--- Your Tasks ---")
	if out.IsEmpty() {
		h.println(task.MessageNoTasks)
		return
	}
	for _, row := range out.Rows {
		h.println(formatRow(row))
	}
}

func (h *handler) markDone(ctx context.Context) bool {
	index, ok := h.promptIndex("Enter task number to mark as done: ")
	if !ok {
		return false
	}
	h.report(ctx, "MarkDone", h.uc.MarkDone(ctx, index), msgMarkedDone)
	return true
}

func (h *handler) delete(ctx context.Context) bool {
	index, ok := h.promptIndex("Enter task number to delete: ")
	if !ok {
		return false
	}
	h.report(ctx, "Delete", h.uc.Delete(ctx, index), msgDeleted)
	return true
}

func (h *handler) search(ctx context.Context) bool {
	keyword, ok := h.prompt("Enter keyword to search: ")
	if !ok {
		return false
	}

	out, err := h.uc.Search(ctx, task.SearchInput{Keyword: keyword})
	if err != nil {
		h.l.Errorf(ctx, "cli: uc.Search: %v", err)
		h.println(ErrorMessage(err))
		return true
	}

	h.println("\n--- Search Results ---")
	switch {
	case out.Total == 0:
		h.println(task.MessageNoTasks)
	case out.Count == 0:
		h.println(task.MessageNoMatches + keyword)
	default:
		for _, row := range out.Rows {
			h.println(formatRow(row))
		}
	}
	return true
}

func (h *handler) save(ctx context.Context) {
	if err := h.uc.Save(ctx); err != nil {
		h.println(ErrorMessage(err))
		return
	}
	h.println(msgSaved)
}

// exit saves the store before leaving the loop. A failed save is reported, not fatal.
func (h *handler) exit(ctx context.Context) error {
	h.save(ctx)
	h.println(msgGoodbye)
	return nil
}

// report prints success, or the user-facing message for err.
func (h *handler) report(ctx context.Context, op string, err error, success string) {
	switch {
	case err == nil:
		h.println(success)
	case errors.Is(err, task.ErrInvalidIndex):
		h.println(msgInvalidIndex)
	default:
		h.l.Errorf(ctx, "cli: uc.%s: %v", op, err)
		h.println(ErrorMessage(err))
	}
}

func (h *handler) printSummary(ctx context.Context) {
	stats, err := h.uc.Stats(ctx)
	if err != nil || stats.Total == 0 {
		return
	}
	fmt.Fprintf(h.out, "Loaded %d tasks: %d pending, %d overdue, %d due today.\n",
		stats.Total, stats.Pending, stats.Overdue, stats.DueToday)
}
