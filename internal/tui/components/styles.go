// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/staffdesk/internal/config/colors"
	"github.com/thenoetrevino/staffdesk/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// CreateBoxStyle frames forms for new entities
	CreateBoxStyle lipgloss.Style

	// EditBoxStyle frames forms for existing entities
	EditBoxStyle lipgloss.Style

	// ConfirmBoxStyle frames remove confirmations
	ConfirmBoxStyle lipgloss.Style

	// ErrorBoxStyle frames blocking error dialogs
	ErrorBoxStyle lipgloss.Style

	// HelpBoxStyle frames the help screen
	HelpBoxStyle lipgloss.Style

	// TitleStyle renders dialog titles
	TitleStyle lipgloss.Style

	// SubtleStyle renders hints
	SubtleStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(c)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	CreateBoxStyle = box.BorderForeground(lipgloss.Color(theme.Create))
	EditBoxStyle = box.BorderForeground(lipgloss.Color(theme.Edit))
	ConfirmBoxStyle = box.BorderForeground(lipgloss.Color(theme.Delete))
	ErrorBoxStyle = box.BorderForeground(lipgloss.Color(theme.ErrorFg))
	HelpBoxStyle = box.BorderForeground(lipgloss.Color(theme.Highlight))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)
}
