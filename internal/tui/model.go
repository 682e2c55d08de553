package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ritual-app/ritual/internal/models"
	"github.com/ritual-app/ritual/internal/session"
	"github.com/ritual-app/ritual/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateMood
	StateAchievements
	StateAddHabit
	StateConfirmDelete
)

// tabCount covers the cycle-able tabs; form and confirm states sit outside it.
const tabCount = 3

var tabNames = []string{"Habits", "Mood", "Achievements"}

type Model struct {
	session *session.Session
	state   SessionState
	keys    KeyMap
	help    help.Model

	habitList habitlist.Model

	form     *huh.Form
	formName string
	formDesc string
	formFreq string

	moodCursor int

	deleteTarget models.Habit

	width    int
	height   int
	quitting bool
}

func NewModel(s *session.Session) Model {
	m := Model{
		session: s,
		state:   StateHabits,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.habitList = habitlist.New(m.habitItems(), 60, 20)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) habitItems() []habitlist.Item {
	tr := m.session.Tracker()
	habits := tr.Habits()
	items := make([]habitlist.Item, 0, len(habits))
	for _, h := range habits {
		items = append(items, habitlist.Item{
			Habit:       h,
			IsCompleted: tr.IsCompletedToday(h.ID),
		})
	}
	return items
}

func newHabitForm(name, desc, freq *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Prompt("> ").
				Value(name),
			huh.NewInput().
				Title("Description").
				Prompt("> ").
				Value(desc),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Monthly", "monthly"),
				).
				Value(freq),
		),
	)
}
