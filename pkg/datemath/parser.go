package datemath

import (
	"fmt"
	"strconv"
	"time"
)

// Parser classifies deadlines against "today" as reported by its clock.
type Parser struct {
	now func() time.Time
}

// NewParser creates a Parser. A nil clock means time.Now.
func NewParser(now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{now: now}
}

// Parse reads a DD/MM/YYYY deadline.
// The text must be exactly 10 bytes long with '/' at index 2 and 5, and each field must be
// a base-10 integer. A field equal to zero makes the date invalid.
func Parse(text string) (Date, error) {
	if len(text) != len(Layout) || text[2] != '/' || text[5] != '/' {
		return Date{}, ErrInvalidFormat
	}

	day, err := strconv.Atoi(text[0:2])
	if err != nil {
		return Date{}, fmt.Errorf("%w: day %q: %w", ErrInvalidFormat, text[0:2], err)
	}
	month, err := strconv.Atoi(text[3:5])
	if err != nil {
		return Date{}, fmt.Errorf("%w: month %q: %w", ErrInvalidFormat, text[3:5], err)
	}
	year, err := strconv.Atoi(text[6:10])
	if err != nil {
		return Date{}, fmt.Errorf("%w: year %q: %w", ErrInvalidFormat, text[6:10], err)
	}

	if day == 0 || month == 0 || year == 0 {
		return Date{}, ErrInvalidFormat
	}

	return Date{Day: day, Month: month, Year: year}, nil
}

// Valid reports whether text is an accepted deadline.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// SortKey returns the parsed date, or the zero Date when text is invalid,
// so invalid deadlines order before every valid one.
func SortKey(text string) Date {
	d, err := Parse(text)
	if err != nil {
		return Date{}
	}
	return d
}

// Compare orders two deadlines ascending by (year, month, day).
func Compare(a, b string) int {
	return SortKey(a).Compare(SortKey(b))
}

// Today returns the calendar date of t in its own location.
func Today(t time.Time) Date {
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// Today returns the parser's current calendar date.
func (p *Parser) Today() Date {
	return Today(p.now())
}

// Status classifies deadline against today. Only the date fields are compared.
func (p *Parser) Status(deadline string) Status {
	d := SortKey(deadline)
	if d.IsZero() {
		return StatusInvalid
	}

	today := p.Today()
	switch {
	case d.Before(today):
		return StatusOverdue
	case d == today:
		return StatusDueToday
	default:
		return StatusUpcoming
	}
}
