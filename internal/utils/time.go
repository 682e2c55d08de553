package utils

import (
	"time"

	"github.com/ritual-app/ritual/internal/constants"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// SameWeek reports whether a and b fall in the same Monday-start week.
func SameWeek(a, b time.Time) bool {
	return StartOfWeek(a).Equal(StartOfWeek(b))
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// FormatDay renders t as a YYYY-MM-DD day string.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD day string at midnight in the given location.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}
