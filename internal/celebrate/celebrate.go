// Package celebrate renders streak-milestone and achievement-unlock banners.
// Everything here is fire-and-forget: rendering trouble is never reported
// back to the operation that triggered the celebration.
package celebrate

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ritual-app/ritual/internal/icons"
	"github.com/ritual-app/ritual/internal/models"
)

var out io.Writer = os.Stdout

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 2).
			Bold(true)

	confettiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

const confetti = "✦ ✧ ✶ ✷ ✸ ✶ ✧ ✦"

// StreakMilestone celebrates a habit reaching a milestone streak.
func StreakMilestone(habit models.Habit, streak int) {
	banner := bannerStyle.Render(fmt.Sprintf("🎉 %d-day streak for %q!", streak, habit.Name))
	subtitle := subtitleStyle.Render("Keep up the great work!")
	fmt.Fprintf(out, "%s\n%s\n%s\n", confettiStyle.Render(confetti), banner, subtitle)
}

// AchievementUnlocked celebrates a newly unlocked achievement.
func AchievementUnlocked(a models.Achievement) {
	style := bannerStyle
	if a.Color != "" {
		style = style.BorderForeground(lipgloss.Color(a.Color))
	}

	banner := style.Render(fmt.Sprintf("%s Achievement unlocked: %s", icons.Glyph(a.Icon), a.Title))
	subtitle := subtitleStyle.Render(a.Description)
	fmt.Fprintf(out, "%s\n%s\n%s\n", confettiStyle.Render(confetti), banner, subtitle)
}
