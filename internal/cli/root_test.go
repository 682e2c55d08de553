package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/ritual-app/ritual/internal/models"
)

func TestFormatHabitLine(t *testing.T) {
	h := models.Habit{
		ID:        "h1",
		Name:      "Read",
		Frequency: models.FrequencyDaily,
		CreatedAt: time.Now(),
		Streak:    5,
	}

	line := FormatHabitLine(h, true)
	if !strings.Contains(line, "Read") {
		t.Errorf("expected habit name in line, got %q", line)
	}
	if !strings.Contains(line, "✓") {
		t.Errorf("expected completed marker, got %q", line)
	}
	if !strings.Contains(line, "5") {
		t.Errorf("expected streak count, got %q", line)
	}

	h.Streak = 0
	line = FormatHabitLine(h, false)
	if !strings.Contains(line, "○") {
		t.Errorf("expected pending marker, got %q", line)
	}
	if strings.Contains(line, "🔥") {
		t.Errorf("zero streak should not render a flame, got %q", line)
	}
}

func TestFormatProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     string
	}{
		{"empty", 0, "0%"},
		{"half", 0.5, "50%"},
		{"full", 1, "100%"},
		{"clamped high", 1.7, "100%"},
		{"clamped low", -0.2, "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatProgressBar(tt.progress, 10)
			if !strings.Contains(got, tt.want) {
				t.Errorf("FormatProgressBar(%v) = %q, want suffix %q", tt.progress, got, tt.want)
			}
		})
	}
}
