package models

// Recommendation is a template-derived habit suggestion. It is never
// persisted; recommendations are regenerated on each request.
type Recommendation struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Frequency   FrequencyType       `json:"frequency"`
	Category    AchievementCategory `json:"category"`
	Icon        string              `json:"icon,omitempty"`
	Color       string              `json:"color,omitempty"`
}
