package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2).
				Border(lipgloss.HiddenBorder(), true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	unlockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	progressFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	progressEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	dangerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)
