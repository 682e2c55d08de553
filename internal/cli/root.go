package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ritual-app/ritual/internal/models"
	"github.com/ritual-app/ritual/internal/session"
	"github.com/ritual-app/ritual/internal/storage"
)

type Context struct {
	Backend storage.Backend
	Session *session.Session
}

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	streakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// FormatHabitLine renders a one-line habit summary for list output.
func FormatHabitLine(h models.Habit, completedToday bool) string {
	marker := pendingStyle.Render("○")
	if completedToday {
		marker = doneStyle.Render("✓")
	}

	line := fmt.Sprintf("%s %s (%s)", marker, h.Name, h.Frequency)
	if h.Streak > 0 {
		line += " " + streakStyle.Render(fmt.Sprintf("🔥 %d", h.Streak))
	}
	return line
}

// FormatProgressBar renders progress in [0,1] as a fixed-width bar.
func FormatProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	filled := int(progress * float64(width))
	bar := barFillStyle.Render(strings.Repeat("█", filled)) + pendingStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, progress*100)
}

// findHabit resolves a habit by id or exact name.
func findHabit(ctx *Context, ref string) (models.Habit, error) {
	if h, ok := ctx.Session.Tracker().Habit(ref); ok {
		return h, nil
	}
	if h, ok := ctx.Session.Tracker().HabitByName(ref); ok {
		return h, nil
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}
