package recommend

import "github.com/ritual-app/ritual/internal/models"

// templates is the static suggestion catalog, in fixed order. Cold-start
// recommendations are a prefix of this list.
var templates = []models.Recommendation{
	{
		Name:        "Morning Meditation",
		Description: "Start your day with 10 minutes of mindful meditation",
		Frequency:   models.FrequencyDaily,
		Category:    models.CategoryMindfulness,
		Icon:        "brain",
		Color:       "#9C27B0",
	},
	{
		Name:        "Read for 30 Minutes",
		Description: "Dedicate time to reading books or articles",
		Frequency:   models.FrequencyDaily,
		Category:    models.CategoryLearning,
		Icon:        "book-open",
		Color:       "#2196F3",
	},
	{
		Name:        "Drink Water",
		Description: "Drink at least 8 glasses of water throughout the day",
		Frequency:   models.FrequencyDaily,
		Category:    models.CategoryHealth,
		Icon:        "cup-water",
		Color:       "#03A9F4",
	},
	{
		Name:        "Exercise",
		Description: "At least 30 minutes of physical activity",
		Frequency:   models.FrequencyDaily,
		Category:    models.CategoryHealth,
		Icon:        "dumbbell",
		Color:       "#F44336",
	},
	{
		Name:        "Gratitude Journal",
		Description: "Write down 3 things you are grateful for",
		Frequency:   models.FrequencyDaily,
		Category:    models.CategoryMindfulness,
		Icon:        "pen-line",
		Color:       "#4CAF50",
	},
	{
		Name:        "Weekly Planning",
		Description: "Plan your week ahead to stay organized",
		Frequency:   models.FrequencyWeekly,
		Category:    models.CategoryProductivity,
		Icon:        "calendar-check",
		Color:       "#FF9800",
	},
	{
		Name:        "Learn Something New",
		Description: "Dedicate time to learning a new skill",
		Frequency:   models.FrequencyWeekly,
		Category:    models.CategoryLearning,
		Icon:        "lightbulb",
		Color:       "#FFEB3B",
	},
	{
		Name:        "Digital Detox",
		Description: "Take a break from screens for at least 3 hours",
		Frequency:   models.FrequencyWeekly,
		Category:    models.CategoryMindfulness,
		Icon:        "smartphone-off",
		Color:       "#607D8B",
	},
	{
		Name:        "Monthly Goal Review",
		Description: "Review and adjust your goals for the next month",
		Frequency:   models.FrequencyMonthly,
		Category:    models.CategoryProductivity,
		Icon:        "target",
		Color:       "#E91E63",
	},
}

// moodTemplates maps the predominant recent mood to the suggestions that
// address it. These precede the static catalog when candidates are ranked.
var moodTemplates = map[models.MoodType][]models.Recommendation{
	models.MoodSad: {
		{
			Name:        "Take a Light Walk",
			Description: "A gentle 15-minute walk outside to lift your mood",
			Frequency:   models.FrequencyDaily,
			Category:    models.CategoryHealth,
			Icon:        "footprints",
			Color:       "#8BC34A",
		},
		{
			Name:        "Reach Out to a Friend",
			Description: "Message or call someone you care about",
			Frequency:   models.FrequencyDaily,
			Category:    models.CategoryMindfulness,
			Icon:        "phone",
			Color:       "#00BCD4",
		},
	},
	models.MoodStressed: {
		{
			Name:        "Breathing Exercise",
			Description: "Five minutes of slow, deep breathing",
			Frequency:   models.FrequencyDaily,
			Category:    models.CategoryMindfulness,
			Icon:        "wind",
			Color:       "#009688",
		},
		{
			Name:        "Digital Detox",
			Description: "Take a break from screens for at least 3 hours",
			Frequency:   models.FrequencyWeekly,
			Category:    models.CategoryMindfulness,
			Icon:        "smartphone-off",
			Color:       "#607D8B",
		},
	},
	models.MoodNeutral: {
		{
			Name:        "Creative Expression",
			Description: "Spend 20 minutes drawing, writing, or making music",
			Frequency:   models.FrequencyDaily,
			Category:    models.CategoryCreativity,
			Icon:        "palette",
			Color:       "#FF5722",
		},
	},
	models.MoodHappy: {
		{
			Name:        "Gratitude Journal",
			Description: "Write down 3 things you are grateful for",
			Frequency:   models.FrequencyDaily,
			Category:    models.CategoryMindfulness,
			Icon:        "pen-line",
			Color:       "#4CAF50",
		},
	},
	models.MoodExcited: {
		{
			Name:        "Gratitude Journal",
			Description: "Write down 3 things you are grateful for",
			Frequency:   models.FrequencyDaily,
			Category:    models.CategoryMindfulness,
			Icon:        "pen-line",
			Color:       "#4CAF50",
		},
	},
}

// Templates returns a copy of the static suggestion catalog.
func Templates() []models.Recommendation {
	out := make([]models.Recommendation, len(templates))
	copy(out, templates)
	return out
}
