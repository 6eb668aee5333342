package forms

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a single-line text input field
type TextInput struct {
	key         string
	title       string
	placeholder string
	value       *string
	input       textinput.Model
	err         string
}

// NewTextInput creates a new text input field. A charLimit of 0 means no
// limit.
func NewTextInput(key, title, placeholder string, charLimit int, value *string) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	if value != nil && *value != "" {
		ti.SetValue(*value)
	}

	return &TextInput{
		key:         key,
		title:       title,
		placeholder: placeholder,
		value:       value,
		input:       ti,
	}
}

// Update handles messages
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	// Update the value pointer
	if t.value != nil {
		*t.value = t.input.Value()
	}

	return t, cmd
}

// View renders the text input
func (t *TextInput) View() string {
	return titleStyle().Render(t.title) + "\n" + t.input.View() + renderError(t.err)
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Key returns the field key
func (t *TextInput) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.input.Value()
}

// SetError sets the message shown under the input
func (t *TextInput) SetError(msg string) {
	t.err = msg
}

// ErrorMessage returns the message shown under the input
func (t *TextInput) ErrorMessage() string {
	return t.err
}
