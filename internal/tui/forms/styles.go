package forms

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/staffdesk/internal/tui/theme"
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg))
}

func renderError(msg string) string {
	if msg == "" {
		return ""
	}
	return "\n" + errorStyle().Render(msg)
}
