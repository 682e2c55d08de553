package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ritual-app/ritual/internal/models"
)

type Item struct {
	Habit       models.Habit
	IsCompleted bool
}

func (i Item) Title() string {
	marker := "○"
	if i.IsCompleted {
		marker = "✓"
	}
	title := fmt.Sprintf("%s %s", marker, i.Habit.Name)
	if i.Habit.Streak > 0 {
		title += fmt.Sprintf(" (🔥 %d)", i.Habit.Streak)
	}
	return title
}

func (i Item) Description() string {
	if i.IsCompleted {
		return "completed today"
	}
	return "not completed today"
}

func (i Item) FilterValue() string { return i.Habit.Name }

type Model struct {
	list list.Model
}

func New(items []Item, width, height int) Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return Model{list: l}
}

func (m *Model) SetItems(items []Item) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	m.list.SetItems(listItems)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// SelectedID returns the id of the highlighted habit, or false when the list
// is empty.
func (m Model) SelectedID() (string, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return "", false
	}
	return item.Habit.ID, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
