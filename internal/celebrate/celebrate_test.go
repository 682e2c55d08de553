package celebrate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ritual-app/ritual/internal/models"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	saved := out
	buf := &bytes.Buffer{}
	out = buf
	t.Cleanup(func() { out = saved })
	return buf
}

func TestStreakMilestone(t *testing.T) {
	buf := capture(t)

	StreakMilestone(models.Habit{Name: "Read"}, 7)

	if !strings.Contains(buf.String(), `7-day streak for "Read"`) {
		t.Errorf("banner missing streak text: %q", buf.String())
	}
}

func TestAchievementUnlocked(t *testing.T) {
	buf := capture(t)

	AchievementUnlocked(models.Achievement{
		Title:       "First Step",
		Description: "Complete your first habit",
		Icon:        "check-circle",
		Color:       "#4CAF50",
	})

	got := buf.String()
	if !strings.Contains(got, "First Step") {
		t.Errorf("banner missing title: %q", got)
	}
	if !strings.Contains(got, "Complete your first habit") {
		t.Errorf("banner missing description: %q", got)
	}
}
