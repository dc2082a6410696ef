package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo-tracker/internal/task"
)

// prompt prints label and reads one line without its line ending. It reports false
// at end of input or when reading fails; a read failure is shown to the user.
// A last line without a trailing newline still counts as a line.
func (h *handler) prompt(label string) (string, bool) {
	fmt.Fprint(h.out, label)

	line, err := h.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(h.out)
		if !errors.Is(err, io.EOF) {
			h.println(msgReadFailed + err.Error())
		}
		return "", false
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// promptIndex reads a task number. Non-numeric input becomes index 0, which every
// operation rejects as out of range.
func (h *handler) promptIndex(label string) (int, bool) {
	line, ok := h.prompt(label)
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, true
	}
	return index, true
}

func (h *handler) println(msg string) {
	fmt.Fprintln(h.out, msg)
}

// formatRow renders "N. description | Due: deadline [Done] → status".
func formatRow(r task.Row) string {
	return fmt.Sprintf("%d. %s | Due: %s [%s] → %s", r.Index, r.Description, r.Deadline, r.DoneLabel(), r.Status.Label())
}
