package constants

const (
	AppName           = "ritual"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/ritual/ritual.db"

	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage record keys
	KeyHabits       = "habits"
	KeyMoods        = "moods"
	KeyAchievements = "achievements"

	// EveningReminderHour is the local hour after which the end-of-day nudge fires
	EveningReminderHour = 20

	// MoodTrendDays is the default lookback window for mood-aware recommendations
	MoodTrendDays = 7

	// DefaultRecommendationLimit caps suggestions returned to the surfaces
	DefaultRecommendationLimit = 3

	// MinStreakForReminder is the streak length worth protecting with a nudge
	MinStreakForReminder = 3
)

// StreakMilestones are the streak values that trigger a celebration when reached.
var StreakMilestones = []int{7, 21, 30, 50, 100}
