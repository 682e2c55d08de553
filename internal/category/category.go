// Package category infers a habit's category from its name and description.
// Both the achievement and recommendation engines consume this single
// classifier so a habit never categorizes differently between them.
package category

import (
	"strings"

	"github.com/ritual-app/ritual/internal/models"
)

type rule struct {
	category models.AchievementCategory
	keywords []string
}

// Rules are checked in order; the first category with a matching keyword wins.
var rules = []rule{
	{models.CategoryHealth, []string{"exercise", "gym", "workout", "run", "walk", "fitness", "health", "water", "hydrate", "sleep", "diet"}},
	{models.CategoryMindfulness, []string{"meditation", "mindful", "breathe", "relax", "journal", "gratitude", "reflect"}},
	{models.CategoryLearning, []string{"read", "learn", "study", "course", "skill", "language", "book"}},
	{models.CategoryProductivity, []string{"work", "productivity", "goal", "plan", "organize", "schedule", "project", "task"}},
	{models.CategoryCreativity, []string{"create", "write", "draw", "paint", "music", "art", "craft", "design"}},
}

// Inferable lists the categories the classifier can produce, in rule order.
func Inferable() []models.AchievementCategory {
	out := make([]models.AchievementCategory, len(rules))
	for i, r := range rules {
		out[i] = r.category
	}
	return out
}

// Infer classifies a habit by keyword matching against its name and
// description. The second return is false when no rule matches.
func Infer(name, description string) (models.AchievementCategory, bool) {
	text := strings.ToLower(name + " " + description)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category, true
			}
		}
	}

	return "", false
}

// InferHabit classifies a habit record.
func InferHabit(h models.Habit) (models.AchievementCategory, bool) {
	return Infer(h.Name, h.Description)
}
