package state

// ErrorDialog is a blocking message shown until dismissed
type ErrorDialog struct {
	Title   string
	Header  string
	Message string
}

// ConfirmDialog is a yes/no question with the action to run on yes
type ConfirmDialog struct {
	Title     string
	Message   string
	OnConfirm func()
}

// DialogState holds the dialog currently shown over the tables or the form,
// and the mode to return to once it is dismissed.
type DialogState struct {
	errorDialog   *ErrorDialog
	confirmDialog *ConfirmDialog
	returnMode    Mode
}

// NewDialogState creates a DialogState with nothing shown
func NewDialogState() *DialogState {
	return &DialogState{}
}

// ShowError opens an error dialog over the given mode
func (s *DialogState) ShowError(dialog ErrorDialog, from Mode) {
	s.errorDialog = &dialog
	s.returnMode = from
}

// ShowConfirm opens a confirmation over the given mode
func (s *DialogState) ShowConfirm(dialog ConfirmDialog, from Mode) {
	s.confirmDialog = &dialog
	s.returnMode = from
}

// Error returns the open error dialog, or nil
func (s *DialogState) Error() *ErrorDialog {
	return s.errorDialog
}

// Confirm returns the open confirmation, or nil
func (s *DialogState) Confirm() *ConfirmDialog {
	return s.confirmDialog
}

// Dismiss closes any dialog and returns the mode that was active before it
func (s *DialogState) Dismiss() Mode {
	s.errorDialog = nil
	s.confirmDialog = nil
	return s.returnMode
}
