package model

// Task is a single to-do item.
type Task struct {
	Description string
	Deadline    string // DD/MM/YYYY, see pkg/datemath
	IsDone      bool
}
