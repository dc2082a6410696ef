package file

import (
	"strings"

	"todo-tracker/internal/model"
)

const (
	delimiter = "|"
	flagDone  = "1"
	flagOpen  = "0"
)

// encodeLine renders a task as description|deadline|flag.
// Delimiters and newlines inside the description are written as is.
func encodeLine(t model.Task) string {
	flag := flagOpen
	if t.IsDone {
		flag = flagDone
	}
	return t.Description + delimiter + t.Deadline + delimiter + flag
}

// decodeLine parses a stored line. It reports false when the line has fewer than two delimiters.
// Everything after the second delimiter is the done flag, compared literally to "1".
func decodeLine(line string) (model.Task, bool) {
	desc, rest, ok := strings.Cut(line, delimiter)
	if !ok {
		return model.Task{}, false
	}
	deadline, flag, ok := strings.Cut(rest, delimiter)
	if !ok {
		return model.Task{}, false
	}
	return model.Task{
		Description: desc,
		Deadline:    deadline,
		IsDone:      flag == flagDone,
	}, true
}
