package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the section browser.
type Styles struct {
	ListPane    lipgloss.Style
	ContentPane lipgloss.Style
	Title       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the default styling.
func DefaultStyles() *Styles {
	border := lipgloss.Color("#45475A")
	return &Styles{
		ListPane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		ContentPane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
	}
}
