package achievements

import "github.com/ritual-app/ritual/internal/models"

// catalog is the built-in achievement set. IDs are stable slugs so unlocks
// persisted in storage keep matching their definitions across restarts.
var catalog = []models.Achievement{
	// General
	{
		ID:          "first-step",
		Title:       "First Step",
		Description: "Complete your first habit",
		Category:    models.CategoryGeneral,
		Icon:        "check-circle",
		Color:       "#4CAF50",
		Condition:   models.AchievementCondition{Type: models.ConditionCompletion, Value: 1},
	},
	{
		ID:          "getting-started",
		Title:       "Getting Started",
		Description: "Complete 10 habits",
		Category:    models.CategoryGeneral,
		Icon:        "rocket",
		Color:       "#FF9800",
		Condition:   models.AchievementCondition{Type: models.ConditionCompletion, Value: 10},
	},
	{
		ID:          "habit-master",
		Title:       "Habit Master",
		Description: "Complete 100 habits",
		Category:    models.CategoryGeneral,
		Icon:        "award",
		Color:       "#2196F3",
		Condition:   models.AchievementCondition{Type: models.ConditionCompletion, Value: 100},
	},

	// Streaks
	{
		ID:          "consistency-beginner",
		Title:       "Consistency Beginner",
		Description: "Maintain a 3-day streak",
		Category:    models.CategoryStreak,
		Icon:        "flame",
		Color:       "#FF5722",
		Condition:   models.AchievementCondition{Type: models.ConditionStreak, Value: 3},
	},
	{
		ID:          "consistency-builder",
		Title:       "Consistency Builder",
		Description: "Maintain a 7-day streak",
		Category:    models.CategoryStreak,
		Icon:        "flame",
		Color:       "#E91E63",
		Condition:   models.AchievementCondition{Type: models.ConditionStreak, Value: 7},
	},
	{
		ID:          "consistency-champion",
		Title:       "Consistency Champion",
		Description: "Maintain a 30-day streak",
		Category:    models.CategoryStreak,
		Icon:        "trophy",
		Color:       "#9C27B0",
		Condition:   models.AchievementCondition{Type: models.ConditionStreak, Value: 30},
	},

	// Categories
	{
		ID:          "health-enthusiast",
		Title:       "Health Enthusiast",
		Description: "Complete 5 health habits",
		Category:    models.CategoryHealth,
		Icon:        "heart",
		Color:       "#F44336",
		Condition:   models.AchievementCondition{Type: models.ConditionCategory, Value: 5, Category: models.CategoryHealth},
	},
	{
		ID:          "health-guru",
		Title:       "Health Guru",
		Description: "Complete 10 health habits",
		Category:    models.CategoryHealth,
		Icon:        "dumbbell",
		Color:       "#E91E63",
		Condition:   models.AchievementCondition{Type: models.ConditionCategory, Value: 10, Category: models.CategoryHealth},
	},
	{
		ID:          "mindfulness-beginner",
		Title:       "Mindfulness Beginner",
		Description: "Complete 5 mindfulness habits",
		Category:    models.CategoryMindfulness,
		Icon:        "brain",
		Color:       "#9C27B0",
		Condition:   models.AchievementCondition{Type: models.ConditionCategory, Value: 5, Category: models.CategoryMindfulness},
	},
	{
		ID:          "zen-master",
		Title:       "Zen Master",
		Description: "Complete 10 mindfulness habits",
		Category:    models.CategoryMindfulness,
		Icon:        "lotus",
		Color:       "#673AB7",
		Condition:   models.AchievementCondition{Type: models.ConditionCategory, Value: 10, Category: models.CategoryMindfulness},
	},
	{
		ID:          "productivity-starter",
		Title:       "Productivity Starter",
		Description: "Complete 10 productivity habits",
		Category:    models.CategoryProductivity,
		Icon:        "check-square",
		Color:       "#3F51B5",
		Condition:   models.AchievementCondition{Type: models.ConditionCategory, Value: 10, Category: models.CategoryProductivity},
	},
	{
		ID:          "productivity-pro",
		Title:       "Productivity Pro",
		Description: "Complete 30 productivity habits",
		Category:    models.CategoryProductivity,
		Icon:        "zap",
		Color:       "#2196F3",
		Condition:   models.AchievementCondition{Type: models.ConditionCategory, Value: 30, Category: models.CategoryProductivity},
	},
}

// Catalog returns a fresh copy of the built-in achievement definitions, all
// locked with zero progress.
func Catalog() []models.Achievement {
	out := make([]models.Achievement, len(catalog))
	copy(out, catalog)
	return out
}
