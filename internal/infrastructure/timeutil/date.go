package timeutil

import (
	"math"
	"time"
)

// CalendarDateFormat is the accepted wire format for calendar dates.
const CalendarDateFormat = "2006-01-02"

// ParseCalendarDate parses a YYYY-MM-DD string into a midnight-UTC time.
func ParseCalendarDate(s string) (time.Time, error) {
	return time.Parse(CalendarDateFormat, s)
}

// Midnight truncates a time to its calendar date, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the signed whole-day difference b - a.
//
// Any sub-day remainder of the underlying timestamp subtraction is rounded
// toward positive infinity. Callers that want pure calendar arithmetic should
// pass midnight times; the ceiling rule matters when they do not, and it
// affects tie-breaks in relevance scoring.
func DaysBetween(a, b time.Time) int {
	diff := b.Sub(a)
	return int(math.Ceil(diff.Hours() / 24))
}

// SameCalendarDate reports whether two times fall on the same calendar date
// in their respective locations' year/month/day terms.
func SameCalendarDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
