package utils

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different hours",
			a:    time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same day-of-year different years",
			a:    time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday maps to monday",
			in:   time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC), // Wednesday
			want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),   // Monday
		},
		{
			name: "monday maps to itself",
			in:   time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps to previous monday",
			in:   time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameWeek(t *testing.T) {
	mon := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
	sun := time.Date(2025, 6, 22, 22, 0, 0, 0, time.UTC)
	nextMon := time.Date(2025, 6, 23, 8, 0, 0, 0, time.UTC)

	if !SameWeek(mon, sun) {
		t.Error("Monday and the following Sunday should share a week")
	}
	if SameWeek(sun, nextMon) {
		t.Error("Sunday and the next Monday should not share a week")
	}
}

func TestSameMonth(t *testing.T) {
	if !SameMonth(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected same month")
	}
	if SameMonth(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("same month in different years should not match")
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2025-06-16", time.UTC)
	if err != nil {
		t.Fatalf("ParseDay() error: %v", err)
	}
	if got := FormatDay(day); got != "2025-06-16" {
		t.Errorf("FormatDay() = %q, want %q", got, "2025-06-16")
	}

	if _, err := ParseDay("16/06/2025", time.UTC); err == nil {
		t.Error("expected error for malformed day string")
	}
}
