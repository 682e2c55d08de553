// Package tracker owns the habit and mood collections and every state
// transition over them. All mutations persist the full collection to the
// storage backend immediately; there is no batching.
package tracker

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ritual-app/ritual/internal/constants"
	"github.com/ritual-app/ritual/internal/logger"
	"github.com/ritual-app/ritual/internal/models"
	"github.com/ritual-app/ritual/internal/storage"
	"github.com/ritual-app/ritual/internal/utils"
)

// MilestoneFunc is invoked when a toggle-on lands a habit on a streak
// milestone. It is fire-and-forget: implementations must not fail the
// completion that triggered them.
type MilestoneFunc func(habit models.Habit, streak int)

// HabitUpdate carries a partial habit edit. Nil fields are left untouched;
// completed dates and streak are never edited through this path.
type HabitUpdate struct {
	Name        *string
	Description *string
	Frequency   *models.FrequencyType
	Color       *string
	Icon        *string
}

type Store struct {
	backend     storage.Backend
	habits      []models.Habit
	moods       []models.MoodEntry
	now         func() time.Time
	onMilestone MilestoneFunc
}

func New(backend storage.Backend) *Store {
	return &Store{
		backend: backend,
		now:     time.Now,
	}
}

// OnMilestone registers the streak-milestone celebration hook.
func (s *Store) OnMilestone(fn MilestoneFunc) {
	s.onMilestone = fn
}

// Load reads the persisted habit and mood records. A record that fails to
// parse degrades to an empty collection; the failure is logged, not surfaced.
func (s *Store) Load() error {
	raw, ok, err := s.backend.Get(constants.KeyHabits)
	if err != nil {
		return fmt.Errorf("failed to read habits: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &s.habits); err != nil {
			logger.Warn("habits record is unreadable, starting empty", "error", err)
			s.habits = nil
		}
	}

	raw, ok, err = s.backend.Get(constants.KeyMoods)
	if err != nil {
		return fmt.Errorf("failed to read moods: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &s.moods); err != nil {
			logger.Warn("moods record is unreadable, starting empty", "error", err)
			s.moods = nil
		}
	}

	return nil
}

// AddHabit creates a habit with no completions and a zero streak. A blank
// name is a silent no-op: surfaces validate names before calling the store.
func (s *Store) AddHabit(name, description string, frequency models.FrequencyType, color, icon string) (models.Habit, error) {
	if name == "" {
		logger.Debug("ignoring habit with blank name")
		return models.Habit{}, nil
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Frequency:   frequency,
		CreatedAt:   s.now(),
		Streak:      0,
		Color:       color,
		Icon:        icon,
	}

	s.habits = append(s.habits, habit)
	if err := s.persistHabits(); err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

// DeleteHabit removes the habit. An unknown id is a no-op.
func (s *Store) DeleteHabit(id string) error {
	for i, h := range s.habits {
		if h.ID == id {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			return s.persistHabits()
		}
	}
	return nil
}

// EditHabit merges the update into the habit. An unknown id is a no-op.
func (s *Store) EditHabit(id string, update HabitUpdate) error {
	for i := range s.habits {
		if s.habits[i].ID != id {
			continue
		}

		if update.Name != nil && *update.Name != "" {
			s.habits[i].Name = *update.Name
		}
		if update.Description != nil {
			s.habits[i].Description = *update.Description
		}
		if update.Frequency != nil {
			s.habits[i].Frequency = *update.Frequency
		}
		if update.Color != nil {
			s.habits[i].Color = *update.Color
		}
		if update.Icon != nil {
			s.habits[i].Icon = *update.Icon
		}

		return s.persistHabits()
	}
	return nil
}

// ToggleComplete flips today's completion for the habit. Toggling on appends
// today and increments the streak; toggling off removes today's entry and
// decrements the streak, floored at zero. The streak is a net toggle count,
// not a consecutive-day count: a skipped day does not reset it. Milestone
// streaks fire the registered celebration hook.
func (s *Store) ToggleComplete(id string) (models.Habit, error) {
	today := s.now()

	for i := range s.habits {
		if s.habits[i].ID != id {
			continue
		}

		h := &s.habits[i]
		if h.CompletedOn(today) {
			kept := h.CompletedDates[:0]
			for _, d := range h.CompletedDates {
				if !utils.SameDay(d, today) {
					kept = append(kept, d)
				}
			}
			h.CompletedDates = kept
			if h.Streak > 0 {
				h.Streak--
			}
		} else {
			h.CompletedDates = append(h.CompletedDates, today)
			h.Streak++
			if isMilestone(h.Streak) && s.onMilestone != nil {
				s.onMilestone(*h, h.Streak)
			}
		}

		if err := s.persistHabits(); err != nil {
			return models.Habit{}, err
		}
		return *h, nil
	}

	// Unknown id is a no-op, not an error.
	return models.Habit{}, nil
}

// Habit returns the habit with the given id.
func (s *Store) Habit(id string) (models.Habit, bool) {
	for _, h := range s.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// HabitByName returns the first habit with the given name.
func (s *Store) HabitByName(name string) (models.Habit, bool) {
	for _, h := range s.habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Habits returns a copy of all habits in creation order.
func (s *Store) Habits() []models.Habit {
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// IsCompletedToday reports whether the habit was completed today. Unknown
// ids report false.
func (s *Store) IsCompletedToday(id string) bool {
	return s.IsCompletedOn(id, s.now())
}

// IsCompletedOn reports whether the habit was completed on the given
// calendar day.
func (s *Store) IsCompletedOn(id string, day time.Time) bool {
	h, ok := s.Habit(id)
	if !ok {
		return false
	}
	return h.CompletedOn(day)
}

// HabitsForToday returns the habits due today. Daily habits always qualify;
// weekly habits qualify on every day of their current week and monthly
// habits on every day of their current month, so in practice every valid
// habit is listed. The filter still rejects unknown frequency values from
// hand-edited storage.
func (s *Store) HabitsForToday() []models.Habit {
	var due []models.Habit
	for _, h := range s.habits {
		switch h.Frequency {
		case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
			due = append(due, h)
		}
	}
	return due
}

// CompletionPercentage returns the rounded share of today's habits already
// completed, or 0 when nothing is due.
func (s *Store) CompletionPercentage() int {
	due := s.HabitsForToday()
	if len(due) == 0 {
		return 0
	}

	completed := 0
	for _, h := range due {
		if s.IsCompletedToday(h.ID) {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(len(due))))
}

// CompletionsThisWeek counts the habit's completions in the current
// Monday-start week.
func (s *Store) CompletionsThisWeek(id string) int {
	return s.countCompletions(id, utils.SameWeek)
}

// CompletionsThisMonth counts the habit's completions in the current month.
func (s *Store) CompletionsThisMonth(id string) int {
	return s.countCompletions(id, utils.SameMonth)
}

func (s *Store) countCompletions(id string, same func(a, b time.Time) bool) int {
	h, ok := s.Habit(id)
	if !ok {
		return 0
	}

	now := s.now()
	count := 0
	for _, d := range h.CompletedDates {
		if same(d, now) {
			count++
		}
	}
	return count
}

// AddMood records today's mood. A second write on the same calendar day
// replaces the earlier entry's mood and note in place.
func (s *Store) AddMood(mood models.MoodType, note string) (models.MoodEntry, error) {
	entry := models.MoodEntry{
		Date: s.now(),
		Mood: mood,
		Note: note,
	}
	if err := entry.Validate(); err != nil {
		return models.MoodEntry{}, err
	}

	replaced := false
	for i := range s.moods {
		if utils.SameDay(s.moods[i].Date, entry.Date) {
			s.moods[i].Mood = mood
			s.moods[i].Note = note
			entry = s.moods[i]
			replaced = true
			break
		}
	}
	if !replaced {
		s.moods = append(s.moods, entry)
	}

	if err := s.persistMoods(); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

// MoodForDate returns the mood entry recorded on the given calendar day.
func (s *Store) MoodForDate(day time.Time) (models.MoodEntry, bool) {
	for _, m := range s.moods {
		if utils.SameDay(m.Date, day) {
			return m, true
		}
	}
	return models.MoodEntry{}, false
}

// Moods returns a copy of all mood entries in recording order.
func (s *Store) Moods() []models.MoodEntry {
	out := make([]models.MoodEntry, len(s.moods))
	copy(out, s.moods)
	return out
}

// MoodTrend returns the mood entries recorded after now minus the given
// number of days.
func (s *Store) MoodTrend(days int) []models.MoodEntry {
	cutoff := s.now().AddDate(0, 0, -days)

	var recent []models.MoodEntry
	for _, m := range s.moods {
		if m.Date.After(cutoff) {
			recent = append(recent, m)
		}
	}
	return recent
}

// SmartReminders derives up to three nudges from today's state. The rules
// are independent and always reported in the same order: almost-done, streak
// at risk, end-of-day.
func (s *Store) SmartReminders() []string {
	var reminders []string

	due := s.HabitsForToday()
	completed := 0
	for _, h := range due {
		if s.IsCompletedToday(h.ID) {
			completed++
		}
	}

	if completed > 0 && completed == len(due)-1 {
		reminders = append(reminders, "You're just 1 habit away from completing all of today's habits!")
	}

	for _, h := range s.habits {
		if h.Streak >= constants.MinStreakForReminder && !s.IsCompletedToday(h.ID) {
			reminders = append(reminders, fmt.Sprintf("Don't break your %d-day streak for %q!", h.Streak, h.Name))
			break
		}
	}

	if s.now().Hour() >= constants.EveningReminderHour && completed < len(due) {
		reminders = append(reminders, "The day is almost over! Take a few minutes to complete your remaining habits.")
	}

	return reminders
}

func (s *Store) persistHabits() error {
	return s.persist(constants.KeyHabits, s.habits)
}

func (s *Store) persistMoods() error {
	return s.persist(constants.KeyMoods, s.moods)
}

func (s *Store) persist(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.backend.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func isMilestone(streak int) bool {
	for _, m := range constants.StreakMilestones {
		if streak == m {
			return true
		}
	}
	return false
}
