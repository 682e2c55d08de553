package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ritual-app/ritual/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-h, msg.Height-v-6)
		return m, nil

	case tea.KeyMsg:
		if m.state == StateAddHabit {
			return m.updateAddHabit(msg)
		}
		if m.state == StateConfirmDelete {
			return m.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = SessionState((int(m.state) + 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = SessionState((int(m.state) + tabCount - 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.Dismiss):
			m.session.DismissRecentlyUnlocked()
			return m, nil
		}

		switch m.state {
		case StateHabits:
			return m.updateHabits(msg)
		case StateMood:
			return m.updateMood(msg)
		}
		return m, nil
	}

	if m.state == StateAddHabit && m.form != nil {
		return m.updateAddHabit(msg)
	}
	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if id, ok := m.habitList.SelectedID(); ok {
			if _, err := m.session.ToggleHabit(id); err == nil {
				m.habitList.SetItems(m.habitItems())
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.formName = ""
		m.formDesc = ""
		m.formFreq = "daily"
		m.form = newHabitForm(&m.formName, &m.formDesc, &m.formFreq)
		m.state = StateAddHabit
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.habitList.SelectedID(); ok {
			if h, found := m.session.Tracker().Habit(id); found {
				m.deleteTarget = h
				m.state = StateConfirmDelete
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m Model) updateMood(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.moodCursor > 0 {
			m.moodCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.moodCursor < len(models.MoodOrder)-1 {
			m.moodCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		m.session.AddMood(models.MoodOrder[m.moodCursor], "")
	}
	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		freq, err := models.ParseFrequency(m.formFreq)
		if err == nil && m.formName != "" {
			m.session.AddHabit(m.formName, m.formDesc, freq, "", "")
		}
		m.form = nil
		m.state = StateHabits
		m.habitList.SetItems(m.habitItems())
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.session.DeleteHabit(m.deleteTarget.ID)
		m.habitList.SetItems(m.habitItems())
		m.deleteTarget = models.Habit{}
		m.state = StateHabits
	case "n", "N", "esc":
		m.deleteTarget = models.Habit{}
		m.state = StateHabits
	}
	return m, nil
}
