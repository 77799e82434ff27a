package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("62")
	grayColor    = lipgloss.Color("240")

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 1).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Width(28).
			Foreground(lipgloss.Color("252"))

	fixedValueStyle = lipgloss.NewStyle().
			Foreground(grayColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Render

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true).
			Render

	helpStyle = lipgloss.NewStyle().
			Foreground(grayColor).
			Render
)
