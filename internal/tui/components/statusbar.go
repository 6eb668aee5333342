package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/staffdesk/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Hint  string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the app name
// Right side: the key hint for the current mode
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Staffdesk - Sellers & Departments"
	rightText := props.Hint
	if rightText == "" {
		rightText = "press ? for help"
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	leftRendered := style.Render(" " + leftText)
	rightRendered := style.Render(rightText + " ")

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := style.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
