package controllers

import (
	"context"

	"github.com/thenoetrevino/staffdesk/internal/events"
)

// FormState tracks one create-or-edit session
type FormState int

const (
	// FormIdle means the dialog is open and waiting for input
	FormIdle FormState = iota
	FormSubmitting
	FormValidationFailed
	FormPersistenceFailed
	FormPersisted
	FormClosed
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormValidationFailed:
		return "validation-failed"
	case FormPersistenceFailed:
		return "persistence-failed"
	case FormPersisted:
		return "persisted"
	case FormClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// formBase carries the state every form controller shares: the dialog
// surface, the listener list and the per-field error labels.
type formBase struct {
	ctx       context.Context
	dialogs   Dialogs
	publisher events.Publisher
	state     FormState
	labels    map[string]string
	fields    []string
}

func newFormBase(ctx context.Context, dialogs Dialogs, fields ...string) formBase {
	if ctx == nil {
		ctx = context.Background()
	}
	return formBase{
		ctx:     ctx,
		dialogs: dialogs,
		labels:  make(map[string]string, len(fields)),
		fields:  fields,
	}
}

// Subscribe registers a listener notified after every successful save
func (f *formBase) Subscribe(listener events.DataChangeListener) {
	f.publisher.Subscribe(listener)
}

// State returns the current form state
func (f *formBase) State() FormState {
	return f.state
}

// IsOpen reports whether the dialog should still be shown
func (f *formBase) IsOpen() bool {
	return f.state != FormClosed && f.state != FormPersisted
}

// Cancel closes the form without saving or notifying
func (f *formBase) Cancel() {
	f.state = FormClosed
}

// ErrorLabel returns the message currently shown under a field
func (f *formBase) ErrorLabel(field string) string {
	return f.labels[field]
}

// setErrorMessages writes each message into its label and clears the labels
// of fields that have no current error
func (f *formBase) setErrorMessages(errs map[string]string) {
	for _, field := range f.fields {
		f.labels[field] = errs[field]
	}
}

func (f *formBase) showError(title, message string) {
	if f.dialogs != nil {
		f.dialogs.ShowError(title, "", message)
	}
}

// committed moves the form through Persisted to Closed, notifying every
// listener exactly once in between
func (f *formBase) committed() {
	f.setErrorMessages(nil)
	f.state = FormPersisted
	f.publisher.Notify()
	f.state = FormClosed
}
