package controllers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/staffdesk/internal/database"
	"github.com/thenoetrevino/staffdesk/internal/events"
)

// FormFactory builds a ready-to-show form for an entity. A returned error
// is treated as a failure to load the view.
type FormFactory[T any] func(entity T) (Form, error)

// ListController shows the full collection of one entity type and mediates
// its create, edit and remove actions
type ListController[T any] struct {
	ctx       context.Context
	service   EntityService[T]
	view      TableView[T]
	dialogs   Dialogs
	opener    FormOpener
	newEntity func() T
	newForm   FormFactory[T]
	items     []T
	logger    *slog.Logger
}

var _ events.DataChangeListener = (*ListController[any])(nil)

// ListOption configures a ListController
type ListOption[T any] func(*ListController[T])

// WithListLogger sets the logger used for failed actions
func WithListLogger[T any](logger *slog.Logger) ListOption[T] {
	return func(c *ListController[T]) {
		c.logger = logger
	}
}

// NewListController wires a list controller to its surface. The service is
// injected separately through SetService.
func NewListController[T any](
	ctx context.Context,
	view TableView[T],
	dialogs Dialogs,
	opener FormOpener,
	newEntity func() T,
	newForm FormFactory[T],
	opts ...ListOption[T],
) *ListController[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	c := &ListController[T]{
		ctx:       ctx,
		view:      view,
		dialogs:   dialogs,
		opener:    opener,
		newEntity: newEntity,
		newForm:   newForm,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetService injects the entity service
func (c *ListController[T]) SetService(svc EntityService[T]) {
	c.service = svc
}

// Items returns the rows currently displayed
func (c *ListController[T]) Items() []T {
	return c.items
}

// UpdateTableView re-fetches the whole collection and replaces the rows
func (c *ListController[T]) UpdateTableView() error {
	if c.service == nil {
		panic("service was nil")
	}

	items, err := c.service.FindAll(c.ctx)
	if err != nil {
		c.logger.Error("failed to load rows", "error", err)
		c.dialogs.ShowError(TitleLoadError, "", err.Error())
		return err
	}

	c.items = items
	c.view.SetItems(items)
	return nil
}

// OnDataChanged refreshes the rows after a form commits
func (c *ListController[T]) OnDataChanged() {
	_ = c.UpdateTableView()
}

// OnNew opens the form for a new, empty entity
func (c *ListController[T]) OnNew() {
	c.openForm(c.newEntity())
}

// OnEdit opens the form pre-populated with a row
func (c *ListController[T]) OnEdit(row T) {
	c.openForm(row)
}

func (c *ListController[T]) openForm(entity T) {
	form, err := c.newForm(entity)
	if err != nil {
		c.logger.Error("failed to load form", "error", err)
		c.dialogs.ShowError(TitleIOException, HeaderLoadViewFail, err.Error())
		return
	}
	form.Subscribe(c)
	c.opener.OpenForm(form)
}

// RequestRemove asks for confirmation before removing a row
func (c *ListController[T]) RequestRemove(row T) {
	c.dialogs.Confirm(TitleConfirmation, MsgConfirmDelete, func() {
		_ = c.Remove(row)
	})
}

// Remove deletes a row and refreshes. A store integrity failure is reported
// through the dialogs and the rows are left as they were.
func (c *ListController[T]) Remove(row T) error {
	if c.service == nil {
		panic("service was nil")
	}

	if err := c.service.Remove(c.ctx, row); err != nil {
		if errors.Is(err, database.ErrIntegrity) {
			c.logger.Warn("remove blocked by reference", "error", err)
		} else {
			c.logger.Error("failed to remove row", "error", err)
		}
		c.dialogs.ShowError(TitleRemoveError, "", err.Error())
		return err
	}

	return c.UpdateTableView()
}
