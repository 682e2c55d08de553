package models

import (
	"testing"
	"time"
)

func TestHabitValidate(t *testing.T) {
	tests := []struct {
		name    string
		habit   Habit
		wantErr bool
	}{
		{
			name:    "valid daily habit",
			habit:   Habit{Name: "Drink Water", Frequency: FrequencyDaily},
			wantErr: false,
		},
		{
			name:    "valid monthly habit",
			habit:   Habit{Name: "Budget Review", Frequency: FrequencyMonthly},
			wantErr: false,
		},
		{
			name:    "empty name",
			habit:   Habit{Name: "", Frequency: FrequencyDaily},
			wantErr: true,
		},
		{
			name:    "bad frequency",
			habit:   Habit{Name: "Stretch", Frequency: "fortnightly"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.habit.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHabitCompletedOn(t *testing.T) {
	morning := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 3, 11, 8, 30, 0, 0, time.UTC)

	h := Habit{Name: "Read", Frequency: FrequencyDaily, CompletedDates: []time.Time{morning}}

	if !h.CompletedOn(evening) {
		t.Error("expected completion to match same calendar day regardless of time")
	}
	if h.CompletedOn(nextDay) {
		t.Error("expected no completion on the following day")
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in      string
		want    FrequencyType
		wantErr bool
	}{
		{"daily", FrequencyDaily, false},
		{"d", FrequencyDaily, false},
		{"weekly", FrequencyWeekly, false},
		{"month", FrequencyMonthly, false},
		{"yearly", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFrequency(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFrequency(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFrequency(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseMood(t *testing.T) {
	for _, valid := range []string{"happy", "neutral", "sad", "excited", "stressed"} {
		if _, err := ParseMood(valid); err != nil {
			t.Errorf("ParseMood(%q) unexpected error: %v", valid, err)
		}
	}

	if _, err := ParseMood("grumpy"); err == nil {
		t.Error("ParseMood(\"grumpy\") expected error")
	}
}
