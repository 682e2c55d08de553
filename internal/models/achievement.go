package models

import "time"

type AchievementCategory string

const (
	CategoryGeneral      AchievementCategory = "general"
	CategoryStreak       AchievementCategory = "streak"
	CategoryHealth       AchievementCategory = "health"
	CategoryMindfulness  AchievementCategory = "mindfulness"
	CategoryProductivity AchievementCategory = "productivity"
	CategoryLearning     AchievementCategory = "learning"
	CategoryCreativity   AchievementCategory = "creativity"
)

type ConditionType string

const (
	// ConditionCompletion unlocks once total completions reach Value.
	ConditionCompletion ConditionType = "completion"
	// ConditionStreak unlocks once any habit's streak reaches Value.
	ConditionStreak ConditionType = "streak"
	// ConditionCategory unlocks once completions of habits inferred to be in
	// Category reach Value.
	ConditionCategory ConditionType = "category"
)

type AchievementCondition struct {
	Type     ConditionType       `json:"type"`
	Value    int                 `json:"value"`
	Category AchievementCategory `json:"category,omitempty"`
}

// Achievement is a catalog-defined milestone. The definition fields are
// static; only UnlockedAt and Progress change over the lifetime of a record.
type Achievement struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    AchievementCategory  `json:"category"`
	Icon        string               `json:"icon"`
	Color       string               `json:"color"`
	Condition   AchievementCondition `json:"condition"`
	// UnlockedAt is set exactly once; an unlocked achievement never re-locks.
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
	// Progress is in [0,1]; fixed at 1 once unlocked.
	Progress float64 `json:"progress"`
}

func (a *Achievement) Unlocked() bool {
	return a.UnlockedAt != nil
}
