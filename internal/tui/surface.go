package tui

import (
	"github.com/thenoetrevino/staffdesk/internal/controllers"
	"github.com/thenoetrevino/staffdesk/internal/tui/forms"
	"github.com/thenoetrevino/staffdesk/internal/tui/state"
)

// surface is what the controllers see of the TUI: blocking dialogs and a
// modal form host
type surface struct {
	ui      *state.UIState
	dialogs *state.DialogState
	editor  *Editor
	confirm *forms.Confirm
	answer  bool
}

var (
	_ controllers.Dialogs    = (*surface)(nil)
	_ controllers.FormOpener = (*surface)(nil)
)

// returnMode is the mode a dialog goes back to when dismissed
func (s *surface) returnMode() state.Mode {
	switch s.ui.Mode() {
	case state.FormMode:
		if s.editor.IsOpen() {
			return state.FormMode
		}
		return state.ListMode
	case state.ConfirmMode, state.ErrorMode:
		return state.ListMode
	default:
		return s.ui.Mode()
	}
}

func (s *surface) ShowError(title, header, message string) {
	s.dialogs.ShowError(state.ErrorDialog{Title: title, Header: header, Message: message}, s.returnMode())
	s.ui.SetMode(state.ErrorMode)
}

func (s *surface) Confirm(title, message string, onConfirm func()) {
	s.answer = false
	s.confirm = forms.NewConfirm("confirm", message, "Yes", "No", &s.answer)
	s.confirm.Focus()
	s.dialogs.ShowConfirm(state.ConfirmDialog{Title: title, Message: message, OnConfirm: onConfirm}, s.returnMode())
	s.ui.SetMode(state.ConfirmMode)
}

func (s *surface) OpenForm(form controllers.Form) {
	s.editor.Open(form)
	s.ui.SetMode(state.FormMode)
}
