// Package validation collects field-level errors for a single form submission
package validation

import (
	"sort"
	"strings"
)

// Messages shown next to invalid fields
const (
	MsgRequired      = "Field can't be empty"
	MsgInvalidNumber = "Invalid number"
)

// Error accumulates field-keyed messages during one submission attempt.
// A field holds at most one message; adding again overwrites it.
type Error struct {
	msg    string
	errors map[string]string
}

// NewError creates an empty error report with the given summary message
func NewError(msg string) *Error {
	return &Error{
		msg:    msg,
		errors: make(map[string]string),
	}
}

// AddError stores the message for field, replacing any previous one
func (e *Error) AddError(field, message string) {
	e.errors[field] = message
}

// Errors returns the field to message mapping
func (e *Error) Errors() map[string]string {
	return e.errors
}

// Get returns the message for field and whether one was recorded
func (e *Error) Get(field string) (string, bool) {
	msg, ok := e.errors[field]
	return msg, ok
}

// HasErrors reports whether at least one field failed
func (e *Error) HasErrors() bool {
	return e != nil && len(e.errors) > 0
}

// Fields returns the failing field names in sorted order
func (e *Error) Fields() []string {
	fields := make([]string, 0, len(e.errors))
	for f := range e.errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Error implements the error interface
func (e *Error) Error() string {
	if len(e.errors) == 0 {
		return e.msg
	}
	parts := make([]string, 0, len(e.errors))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e.errors[f])
	}
	return e.msg + " (" + strings.Join(parts, "; ") + ")"
}
