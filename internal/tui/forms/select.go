package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/staffdesk/internal/tui/theme"
)

// Option represents a selectable option
type Option struct {
	Label string
	Value int
}

// Select is a single-choice field cycling through its options
type Select struct {
	key     string
	title   string
	options []Option
	focused bool
	cursor  int
	err     string
}

// NewSelect creates a select positioned on the option whose value is
// selected, or on the first option
func NewSelect(key, title string, options []Option, selected int) *Select {
	cursor := 0
	for i, opt := range options {
		if opt.Value == selected {
			cursor = i
			break
		}
	}
	return &Select{
		key:     key,
		title:   title,
		options: options,
		cursor:  cursor,
	}
}

// Update handles messages
func (s *Select) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !s.focused || len(s.options) == 0 {
		return s, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "left", "up", "h", "k":
			s.cursor = (s.cursor + len(s.options) - 1) % len(s.options)
		case "right", "down", "l", "j", " ":
			s.cursor = (s.cursor + 1) % len(s.options)
		}
	}

	return s, nil
}

// View renders the select field
func (s *Select) View() string {
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.SelectedBg))
	unselectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	if len(s.options) == 0 {
		return titleStyle().Render(s.title) + "\n" + unselectedStyle.Render("(none)")
	}

	parts := make([]string, len(s.options))
	for i, opt := range s.options {
		if i == s.cursor {
			parts[i] = selectedStyle.Render(" " + opt.Label + " ")
		} else {
			parts[i] = unselectedStyle.Render(" " + opt.Label + " ")
		}
	}

	arrows := "  "
	if s.focused {
		arrows = "◀ "
	}
	return titleStyle().Render(s.title) + "\n" + arrows + strings.Join(parts, " ") + renderError(s.err)
}

// Focus focuses the select field
func (s *Select) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus
func (s *Select) Blur() {
	s.focused = false
}

// Focused returns whether the field is focused
func (s *Select) Focused() bool {
	return s.focused
}

// Key returns the field key
func (s *Select) Key() string {
	return s.key
}

// Selected returns the index of the chosen option, or -1 without options
func (s *Select) Selected() int {
	if len(s.options) == 0 {
		return -1
	}
	return s.cursor
}

// SetError sets the message shown under the options
func (s *Select) SetError(msg string) {
	s.err = msg
}

// ErrorMessage returns the message shown under the options
func (s *Select) ErrorMessage() string {
	return s.err
}
