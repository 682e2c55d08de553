// Package session glues the habit store, achievement engine, and
// recommendation engine together for the surfaces. It loads persisted state
// at startup, re-evaluates achievements after every habit mutation, and
// keeps the most recently unlocked achievement around for transient display.
package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ritual-app/ritual/internal/achievements"
	"github.com/ritual-app/ritual/internal/constants"
	"github.com/ritual-app/ritual/internal/logger"
	"github.com/ritual-app/ritual/internal/models"
	"github.com/ritual-app/ritual/internal/recommend"
	"github.com/ritual-app/ritual/internal/storage"
	"github.com/ritual-app/ritual/internal/tracker"
)

// UnlockFunc is invoked with the single most relevant newly unlocked
// achievement after a mutation. Fire-and-forget.
type UnlockFunc func(models.Achievement)

type Session struct {
	backend          storage.Backend
	tracker          *tracker.Store
	achievements     []models.Achievement
	recentlyUnlocked *models.Achievement
	onUnlock         UnlockFunc
	now              func() time.Time
}

// New builds a session over an already-loaded backend.
func New(backend storage.Backend) *Session {
	return &Session{
		backend: backend,
		tracker: tracker.New(backend),
		now:     time.Now,
	}
}

// OnUnlock registers the achievement celebration hook.
func (s *Session) OnUnlock(fn UnlockFunc) {
	s.onUnlock = fn
}

// OnMilestone registers the streak-milestone celebration hook.
func (s *Session) OnMilestone(fn tracker.MilestoneFunc) {
	s.tracker.OnMilestone(fn)
}

// Load reads habits, moods, and achievements from storage. An achievements
// record that is missing or unreadable reseeds the built-in catalog; the
// catalog is persisted on first run so unlock state accumulates from there.
func (s *Session) Load() error {
	if err := s.tracker.Load(); err != nil {
		return err
	}

	raw, ok, err := s.backend.Get(constants.KeyAchievements)
	if err != nil {
		return fmt.Errorf("failed to read achievements: %w", err)
	}

	if !ok {
		s.achievements = achievements.Catalog()
		return s.persistAchievements()
	}

	if err := json.Unmarshal([]byte(raw), &s.achievements); err != nil {
		logger.Warn("achievements record is unreadable, reseeding catalog", "error", err)
		s.achievements = achievements.Catalog()
		return s.persistAchievements()
	}
	if len(s.achievements) == 0 {
		s.achievements = achievements.Catalog()
		return s.persistAchievements()
	}

	return nil
}

// Tracker exposes the habit store for read-only queries. Mutations should go
// through the session so achievements stay in sync.
func (s *Session) Tracker() *tracker.Store {
	return s.tracker
}

func (s *Session) AddHabit(name, description string, frequency models.FrequencyType, color, icon string) (models.Habit, error) {
	habit, err := s.tracker.AddHabit(name, description, frequency, color, icon)
	if err != nil {
		return models.Habit{}, err
	}
	s.recheck()
	return habit, nil
}

func (s *Session) EditHabit(id string, update tracker.HabitUpdate) error {
	if err := s.tracker.EditHabit(id, update); err != nil {
		return err
	}
	s.recheck()
	return nil
}

func (s *Session) DeleteHabit(id string) error {
	if err := s.tracker.DeleteHabit(id); err != nil {
		return err
	}
	s.recheck()
	return nil
}

func (s *Session) ToggleHabit(id string) (models.Habit, error) {
	habit, err := s.tracker.ToggleComplete(id)
	if err != nil {
		return models.Habit{}, err
	}
	s.recheck()
	return habit, nil
}

func (s *Session) AddMood(mood models.MoodType, note string) (models.MoodEntry, error) {
	return s.tracker.AddMood(mood, note)
}

// Achievements returns a copy of the current achievement state.
func (s *Session) Achievements() []models.Achievement {
	out := make([]models.Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}

// Unlocked returns the unlocked achievements in catalog order.
func (s *Session) Unlocked() []models.Achievement {
	var out []models.Achievement
	for _, a := range s.achievements {
		if a.Unlocked() {
			out = append(out, a)
		}
	}
	return out
}

// InProgress returns the locked achievements in catalog order.
func (s *Session) InProgress() []models.Achievement {
	var out []models.Achievement
	for _, a := range s.achievements {
		if !a.Unlocked() {
			out = append(out, a)
		}
	}
	return out
}

// RecentlyUnlocked returns the achievement unlocked by the latest mutation,
// if any remains undismissed.
func (s *Session) RecentlyUnlocked() (models.Achievement, bool) {
	if s.recentlyUnlocked == nil {
		return models.Achievement{}, false
	}
	return *s.recentlyUnlocked, true
}

// DismissRecentlyUnlocked clears the transient unlock display.
func (s *Session) DismissRecentlyUnlocked() {
	s.recentlyUnlocked = nil
}

// Recommendations derives habit suggestions from the current habits and the
// recent mood window.
func (s *Session) Recommendations(limit int) []models.Recommendation {
	return recommend.Suggest(s.tracker.Habits(), s.tracker.MoodTrend(constants.MoodTrendDays), limit)
}

// recheck runs the achievement pass against the current habits, persists the
// result, and surfaces the first newly unlocked achievement. Persistence
// trouble here degrades the unlock to this process's lifetime; it never
// fails the habit mutation that triggered it.
func (s *Session) recheck() {
	before := s.achievements
	after := achievements.Check(s.tracker.Habits(), before, s.now())
	fresh := achievements.NewlyUnlocked(before, after)
	s.achievements = after

	if err := s.persistAchievements(); err != nil {
		logger.Error("failed to persist achievements", "error", err)
	}

	if len(fresh) > 0 {
		unlocked := fresh[0]
		s.recentlyUnlocked = &unlocked
		if s.onUnlock != nil {
			s.onUnlock(unlocked)
		}
	}
}

func (s *Session) persistAchievements() error {
	data, err := json.Marshal(s.achievements)
	if err != nil {
		return fmt.Errorf("failed to serialize achievements: %w", err)
	}
	if err := s.backend.Set(constants.KeyAchievements, string(data)); err != nil {
		return fmt.Errorf("failed to persist achievements: %w", err)
	}
	return nil
}
