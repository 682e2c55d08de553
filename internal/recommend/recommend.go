// Package recommend ranks habit suggestions from a static template catalog,
// the user's current habit mix, and their recent moods. It holds no state;
// identical inputs always produce identical output.
package recommend

import (
	"strings"

	"github.com/ritual-app/ritual/internal/category"
	"github.com/ritual-app/ritual/internal/models"
)

// Suggest returns up to limit habit recommendations.
//
// With no current habits it returns the catalog prefix. Otherwise the
// candidate order is mood-targeted templates first, then the static catalog;
// names already in use are dropped (case-insensitive), duplicates keep their
// first occurrence, and templates in underrepresented categories are stably
// moved ahead of the rest.
func Suggest(habits []models.Habit, recentMoods []models.MoodEntry, limit int) []models.Recommendation {
	if limit <= 0 {
		return nil
	}

	if len(habits) == 0 {
		cold := Templates()
		if len(cold) > limit {
			cold = cold[:limit]
		}
		return cold
	}

	categoryCount := make(map[models.AchievementCategory]int)
	existing := make(map[string]bool, len(habits))
	for _, h := range habits {
		existing[strings.ToLower(h.Name)] = true
		if cat, ok := category.InferHabit(h); ok {
			categoryCount[cat]++
		}
	}

	underrepresented := make(map[models.AchievementCategory]bool)
	for _, cat := range category.Inferable() {
		if categoryCount[cat] < 2 {
			underrepresented[cat] = true
		}
	}

	var candidates []models.Recommendation
	if mood, ok := PredominantMood(recentMoods); ok {
		candidates = append(candidates, moodTemplates[mood]...)
	}
	candidates = append(candidates, templates...)

	seen := make(map[string]bool)
	var preferred, rest []models.Recommendation
	for _, rec := range candidates {
		key := strings.ToLower(rec.Name)
		if existing[key] || seen[key] {
			continue
		}
		seen[key] = true

		if underrepresented[rec.Category] {
			preferred = append(preferred, rec)
		} else {
			rest = append(rest, rec)
		}
	}

	ranked := append(preferred, rest...)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// PredominantMood returns the most frequent mood among the entries. Ties
// resolve in the fixed order happy, sad, neutral, excited, stressed. The
// second return is false when there are no entries.
func PredominantMood(moods []models.MoodEntry) (models.MoodType, bool) {
	if len(moods) == 0 {
		return "", false
	}

	counts := make(map[models.MoodType]int, len(moods))
	for _, m := range moods {
		counts[m.Mood]++
	}

	var best models.MoodType
	bestCount := 0
	for _, mood := range models.MoodOrder {
		if counts[mood] > bestCount {
			best = mood
			bestCount = counts[mood]
		}
	}

	return best, true
}
