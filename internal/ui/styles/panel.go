package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded border panel used by the playlist view.
func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().Border)
}
