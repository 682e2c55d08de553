package achievements

import (
	"testing"
	"time"

	"github.com/ritual-app/ritual/internal/models"
)

func day(d int) time.Time {
	return time.Date(2025, 4, d, 12, 0, 0, 0, time.UTC)
}

func habitWithCompletions(name string, n int) models.Habit {
	h := models.Habit{Name: name, Frequency: models.FrequencyDaily, Streak: n}
	for i := 0; i < n; i++ {
		h.CompletedDates = append(h.CompletedDates, day(i+1))
	}
	return h
}

func find(t *testing.T, list []models.Achievement, id string) models.Achievement {
	t.Helper()
	for _, a := range list {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %q not in list", id)
	return models.Achievement{}
}

func TestCheckFirstCompletionUnlocks(t *testing.T) {
	habits := []models.Habit{habitWithCompletions("Call grandma", 1)}
	now := day(10)

	updated := Check(habits, Catalog(), now)

	first := find(t, updated, "first-step")
	if !first.Unlocked() {
		t.Fatal("first-step should unlock after one completion")
	}
	if !first.UnlockedAt.Equal(now) {
		t.Errorf("UnlockedAt = %v, want %v", first.UnlockedAt, now)
	}
	if first.Progress != 1 {
		t.Errorf("Progress = %v, want 1", first.Progress)
	}
}

func TestCheckProgressForLocked(t *testing.T) {
	habits := []models.Habit{habitWithCompletions("Call grandma", 5)}

	updated := Check(habits, Catalog(), day(10))

	gettingStarted := find(t, updated, "getting-started")
	if gettingStarted.Unlocked() {
		t.Fatal("getting-started should stay locked at 5/10")
	}
	if gettingStarted.Progress != 0.5 {
		t.Errorf("Progress = %v, want 0.5", gettingStarted.Progress)
	}
}

func TestCheckNeverRelocks(t *testing.T) {
	habits := []models.Habit{habitWithCompletions("Call grandma", 1)}
	firstPass := Check(habits, Catalog(), day(10))

	// All habits deleted afterwards; the unlock must survive untouched.
	secondPass := Check(nil, firstPass, day(20))

	first := find(t, secondPass, "first-step")
	if !first.Unlocked() {
		t.Fatal("first-step re-locked after habits were removed")
	}
	if !first.UnlockedAt.Equal(day(10)) {
		t.Errorf("UnlockedAt re-dated to %v", first.UnlockedAt)
	}
	if first.Progress != 1 {
		t.Errorf("Progress = %v, want 1 after unlock", first.Progress)
	}
}

func TestCheckStreakCondition(t *testing.T) {
	habits := []models.Habit{
		{Name: "Call grandma", Frequency: models.FrequencyDaily, Streak: 3},
		{Name: "Tidy desk", Frequency: models.FrequencyDaily, Streak: 1},
	}

	updated := Check(habits, Catalog(), day(10))

	beginner := find(t, updated, "consistency-beginner")
	if !beginner.Unlocked() {
		t.Error("3-day streak should unlock consistency-beginner")
	}
	builder := find(t, updated, "consistency-builder")
	if builder.Unlocked() {
		t.Error("consistency-builder should stay locked at max streak 3")
	}
	if want := 3.0 / 7.0; builder.Progress != want {
		t.Errorf("consistency-builder progress = %v, want %v", builder.Progress, want)
	}
}

func TestCheckCategoryCondition(t *testing.T) {
	// "Morning Run" classifies as health; 5 completions meet the threshold.
	habits := []models.Habit{habitWithCompletions("Morning Run", 5)}

	updated := Check(habits, Catalog(), day(10))

	enthusiast := find(t, updated, "health-enthusiast")
	if !enthusiast.Unlocked() {
		t.Error("5 health completions should unlock health-enthusiast")
	}
	guru := find(t, updated, "health-guru")
	if guru.Unlocked() {
		t.Error("health-guru should stay locked at 5/10")
	}
	if guru.Progress != 0.5 {
		t.Errorf("health-guru progress = %v, want 0.5", guru.Progress)
	}
}

func TestCheckNoHabits(t *testing.T) {
	updated := Check(nil, Catalog(), day(10))

	for _, a := range updated {
		if a.Unlocked() {
			t.Errorf("%s unlocked with no habits", a.ID)
		}
		if a.Progress != 0 {
			t.Errorf("%s progress = %v with no habits", a.ID, a.Progress)
		}
	}
}

func TestNewlyUnlocked(t *testing.T) {
	before := Catalog()
	habits := []models.Habit{habitWithCompletions("Morning Run", 5)}
	after := Check(habits, before, day(10))

	fresh := NewlyUnlocked(before, after)
	if len(fresh) == 0 {
		t.Fatal("expected newly unlocked achievements")
	}
	// first-step precedes health-enthusiast in catalog order
	if fresh[0].ID != "first-step" {
		t.Errorf("first newly unlocked = %s, want first-step", fresh[0].ID)
	}

	// A second pass over the same state surfaces nothing new.
	again := Check(habits, after, day(11))
	if got := NewlyUnlocked(after, again); len(got) != 0 {
		t.Errorf("second pass produced %d newly unlocked, want 0", len(got))
	}
}

func TestCatalogReturnsFreshCopy(t *testing.T) {
	a := Catalog()
	a[0].Progress = 0.75

	if b := Catalog(); b[0].Progress != 0 {
		t.Error("Catalog() shares state between calls")
	}
}
