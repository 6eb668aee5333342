package forms

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
)

// DateInput is a text input that holds a calendar date typed in layout
type DateInput struct {
	*TextInput
	layout string
}

// NewDateInput creates a date field pre-filled from value
func NewDateInput(key, title, layout string, value *time.Time) *DateInput {
	text := ""
	if value != nil {
		text = value.Format(layout)
	}
	return &DateInput{
		TextInput: NewTextInput(key, title, strings.ToLower(layout), len(layout), &text),
		layout:    layout,
	}
}

// Update handles messages
func (d *DateInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	_, cmd := d.TextInput.Update(msg)
	return d, cmd
}

// Date returns the typed date in the local time zone, or nil when the text
// is blank or not a valid date
func (d *DateInput) Date() *time.Time {
	text := strings.TrimSpace(d.Value())
	if text == "" {
		return nil
	}
	t, err := time.ParseInLocation(d.layout, text, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// Invalid reports text that is present but does not parse
func (d *DateInput) Invalid() bool {
	return strings.TrimSpace(d.Value()) != "" && d.Date() == nil
}
