package datemath

import (
	"errors"
	"fmt"
)

// Layout is the only accepted deadline format.
const Layout = "DD/MM/YYYY"

// ErrInvalidFormat is returned when a deadline does not match Layout.
var ErrInvalidFormat = errors.New("invalid date format, expected " + Layout)

// Date is a calendar date without time of day or location.
// No range validation is applied: 31/02/2024 is a valid Date.
type Date struct {
	Day   int
	Month int
	Year  int
}

// IsZero reports whether d is the zero Date, the ordering key of invalid deadlines.
func (d Date) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}

// Compare orders dates by year, then month, then day.
// It returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Status classifies a deadline against the current date.
type Status string

const (
	StatusInvalid  Status = "invalid"
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due_today"
	StatusUpcoming Status = "upcoming"
)

// Label is the human readable form shown next to a task.
func (s Status) Label() string {
	switch s {
	case StatusOverdue:
		return "❌ Overdue"
	case StatusDueToday:
		return "⚠ Reminder: Due Today"
	case StatusUpcoming:
		return "Upcoming"
	default:
		return "Invalid date"
	}
}
