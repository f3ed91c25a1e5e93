package utils

import (
	"strings"
	"time"

	"github.com/jmills-dev/streaks/internal/constants"
)

// TruncateDate reduces a stored date string to its YYYY-MM-DD portion,
// stripping any time-of-day or timezone suffix. Dates are compared as plain
// calendar days; carrying a time component across timezone boundaries would
// otherwise shift records by a day.
func TruncateDate(s string) string {
	if i := strings.IndexAny(s, "T "); i >= 0 {
		return s[:i]
	}
	return s
}

// ParseDate parses a YYYY-MM-DD date string (time suffixes tolerated) into a
// UTC midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, TruncateDate(s))
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DayOf normalizes a time to midnight UTC of its calendar date, so that day
// stepping is immune to DST transitions.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns midnight of the Sunday beginning the calendar week that
// contains t. Weeks are Sunday-start, matching the aggregation period.
func WeekStart(t time.Time) time.Time {
	d := DayOf(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeekEnd returns midnight of the Saturday ending the calendar week that
// contains t.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}

// MonthStart returns midnight of the first day of t's calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns midnight of the last day of t's calendar month,
// respecting variable month lengths.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// InRange reports whether day falls within [start, end] inclusive. All three
// are expected to be midnight-normalized.
func InRange(day, start, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}
