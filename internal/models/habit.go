package models

import (
	"fmt"
	"time"
)

type FrequencyType string

const (
	FrequencyDaily   FrequencyType = "daily"
	FrequencyWeekly  FrequencyType = "weekly"
	FrequencyMonthly FrequencyType = "monthly"
)

// Habit is a user-defined recurring task tracked for completion.
type Habit struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Frequency   FrequencyType `json:"frequency"`
	CreatedAt   time.Time     `json:"created_at"`
	// CompletedDates holds at most one entry per calendar day.
	CompletedDates []time.Time `json:"completed_dates"`
	// Streak is a toggle counter: +1 on completion, -1 on un-completion,
	// floored at zero. It does not reset when a day is skipped.
	Streak int    `json:"streak"`
	Color  string `json:"color,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

func (h *Habit) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	switch h.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
	default:
		return fmt.Errorf("invalid frequency %q (expected daily, weekly, or monthly)", h.Frequency)
	}

	return nil
}

// CompletedOn reports whether the habit was completed on the given calendar
// day. Time-of-day is ignored.
func (h *Habit) CompletedOn(day time.Time) bool {
	for _, d := range h.CompletedDates {
		if d.Year() == day.Year() && d.YearDay() == day.YearDay() {
			return true
		}
	}
	return false
}

// ParseFrequency parses a frequency string, accepting common short forms.
func ParseFrequency(s string) (FrequencyType, error) {
	switch s {
	case "daily", "day", "d":
		return FrequencyDaily, nil
	case "weekly", "week", "w":
		return FrequencyWeekly, nil
	case "monthly", "month", "m":
		return FrequencyMonthly, nil
	default:
		return "", fmt.Errorf("invalid frequency: %s", s)
	}
}
