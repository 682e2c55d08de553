package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ritual-app/ritual/internal/models"
)

var moodGlyphs = map[models.MoodType]string{
	models.MoodHappy:    "😊",
	models.MoodSad:      "😢",
	models.MoodNeutral:  "😐",
	models.MoodExcited:  "🤩",
	models.MoodStressed: "😰",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateAddHabit && m.form != nil {
		return docStyle.Render(
			titleStyle.Render("New Habit") + "\n\n" + m.form.View(),
		)
	}

	if m.state == StateConfirmDelete {
		return docStyle.Render(
			dangerStyle.Render(fmt.Sprintf("Delete %q?", m.deleteTarget.Name)) +
				"\n\n" + faintStyle.Render("y: delete  n: cancel"),
		)
	}

	var body string
	switch m.state {
	case StateHabits:
		body = m.viewHabits()
	case StateMood:
		body = m.viewMood()
	case StateAchievements:
		body = m.viewAchievements()
	}

	sections := []string{m.viewTabs(), body}
	if banner := m.viewUnlockBanner(); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		style := inactiveTabStyle
		if SessionState(i) == m.state {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	var b strings.Builder
	b.WriteString(m.habitList.View())

	if reminders := m.session.Tracker().SmartReminders(); len(reminders) > 0 {
		b.WriteString("\n")
		for _, r := range reminders {
			b.WriteString(faintStyle.Render("• "+r) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewMood() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("How are you feeling today?") + "\n\n")

	for i, mood := range models.MoodOrder {
		cursor := "  "
		line := fmt.Sprintf("%s %s", moodGlyphs[mood], mood)
		if i == m.moodCursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	if entry, ok := m.session.Tracker().MoodForDate(time.Now()); ok {
		b.WriteString("\n" + faintStyle.Render(fmt.Sprintf("Logged today: %s", entry.Mood)))
	}

	trend := m.session.Tracker().MoodTrend(7)
	if len(trend) > 0 {
		b.WriteString("\n\n" + titleStyle.Render("Last 7 days") + "\n")
		for _, entry := range trend {
			b.WriteString(fmt.Sprintf("  %s  %s %s\n",
				entry.Date.Format("Mon Jan 2"),
				moodGlyphs[entry.Mood],
				entry.Mood))
		}
	}
	return b.String()
}

func (m Model) viewAchievements() string {
	var b strings.Builder

	unlocked := m.session.Unlocked()
	b.WriteString(titleStyle.Render(fmt.Sprintf("Unlocked (%d)", len(unlocked))) + "\n")
	for _, a := range unlocked {
		b.WriteString(fmt.Sprintf("  %s %s\n", a.Icon, a.Title))
		b.WriteString(faintStyle.Render("    "+a.Description) + "\n")
	}

	inProgress := m.session.InProgress()
	b.WriteString("\n" + titleStyle.Render("In Progress") + "\n")
	for _, a := range inProgress {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", a.Icon, a.Title, renderProgressBar(a.Progress, 20)))
	}
	return b.String()
}

func (m Model) viewUnlockBanner() string {
	a, ok := m.session.RecentlyUnlocked()
	if !ok {
		return ""
	}
	return unlockStyle.Render(fmt.Sprintf("🏆 Achievement unlocked: %s %s", a.Icon, a.Title))
}

func renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return progressFilled.Render(strings.Repeat("█", filled)) +
		progressEmpty.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %d%%", int(progress*100))
}
