// Package achievements evaluates the static achievement catalog against
// aggregate habit statistics.
package achievements

import (
	"time"

	"github.com/ritual-app/ritual/internal/category"
	"github.com/ritual-app/ritual/internal/models"
)

// Check evaluates every locked achievement in current against the habits'
// aggregates and returns the full updated list. Already-unlocked entries pass
// through unchanged: an achievement never re-locks and its unlock time is
// never re-dated, regardless of later habit edits or deletions.
func Check(habits []models.Habit, current []models.Achievement, now time.Time) []models.Achievement {
	totalCompletions := 0
	maxStreak := 0
	categoryCompletions := make(map[models.AchievementCategory]int)

	for _, h := range habits {
		totalCompletions += len(h.CompletedDates)
		if h.Streak > maxStreak {
			maxStreak = h.Streak
		}
		if cat, ok := category.InferHabit(h); ok {
			categoryCompletions[cat] += len(h.CompletedDates)
		}
	}

	updated := make([]models.Achievement, len(current))
	for i, a := range current {
		if a.Unlocked() {
			updated[i] = a
			continue
		}

		var aggregate int
		switch a.Condition.Type {
		case models.ConditionCompletion:
			aggregate = totalCompletions
		case models.ConditionStreak:
			aggregate = maxStreak
		case models.ConditionCategory:
			aggregate = categoryCompletions[a.Condition.Category]
		}

		if a.Condition.Value > 0 && aggregate >= a.Condition.Value {
			unlockedAt := now
			a.UnlockedAt = &unlockedAt
			a.Progress = 1
		} else if a.Condition.Value > 0 {
			a.Progress = float64(aggregate) / float64(a.Condition.Value)
			if a.Progress > 1 {
				a.Progress = 1
			}
		}

		updated[i] = a
	}

	return updated
}

// NewlyUnlocked returns the achievements present in after that were locked in
// before, in after's order. The caller surfaces the first as the one-shot
// celebration.
func NewlyUnlocked(before, after []models.Achievement) []models.Achievement {
	locked := make(map[string]bool, len(before))
	for _, a := range before {
		if !a.Unlocked() {
			locked[a.ID] = true
		}
	}

	var fresh []models.Achievement
	for _, a := range after {
		if a.Unlocked() && locked[a.ID] {
			fresh = append(fresh, a)
		}
	}
	return fresh
}
