package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the TUI.
type Styles struct {
	Title      lipgloss.Style
	Input      lipgloss.Style
	Selected   lipgloss.Style
	Result     lipgloss.Style
	Tags       lipgloss.Style
	Excerpt    lipgloss.Style
	Error      lipgloss.Style
	Suggestion lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default theme.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		Result: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Tags: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Excerpt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Suggestion: lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
