package watch

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles for the watch view.
type Theme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Time     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Tracking lipgloss.Style
	Dim      lipgloss.Style
}

func NewDefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Time:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Tracking: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Dim:      lipgloss.NewStyle().Faint(true),
	}
}
