// Package controllers holds the list and form controllers that mediate
// between a display surface and the entity services. Controllers never draw
// anything themselves; they drive a surface through the small interfaces
// declared here.
package controllers

import (
	"context"

	"github.com/thenoetrevino/staffdesk/internal/events"
)

// EntityService is the subset of a service the controllers depend on.
// department.Service and seller.Service both satisfy it.
type EntityService[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	SaveOrUpdate(ctx context.Context, entity T) error
	Remove(ctx context.Context, entity T) error
}

// TableView is a bindable table that accepts a replace-all collection
type TableView[T any] interface {
	SetItems(items []T)
}

// Dialogs shows blocking messages and confirmation prompts
type Dialogs interface {
	ShowError(title, header, message string)
	Confirm(title, message string, onConfirm func())
}

// FormOpener presents a form modally over the current list
type FormOpener interface {
	OpenForm(form Form)
}

// Form is what a surface needs to know about an open form
type Form interface {
	Title() string
	Subscribe(listener events.DataChangeListener)
	State() FormState
	IsOpen() bool
	Cancel()
}

// Dialog titles and messages shown by the controllers
const (
	TitleConfirmation  = "Confirmation"
	MsgConfirmDelete   = "Are you sure to delete?"
	TitleSaveError     = "Error saving object"
	TitleRemoveError   = "Error removing object"
	TitleLoadError     = "Error loading data"
	TitleIOException   = "IO Exception"
	HeaderLoadViewFail = "Error loading view"
)
