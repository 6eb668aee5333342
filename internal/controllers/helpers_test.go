package controllers

import (
	"context"

	"github.com/thenoetrevino/staffdesk/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type shownError struct {
	title, header, message string
}

// fakeDialogs records errors and answers every confirmation with answer
type fakeDialogs struct {
	errors   []shownError
	confirms []string
	answer   bool
}

func (d *fakeDialogs) ShowError(title, header, message string) {
	d.errors = append(d.errors, shownError{title, header, message})
}

func (d *fakeDialogs) Confirm(title, message string, onConfirm func()) {
	d.confirms = append(d.confirms, title+": "+message)
	if d.answer {
		onConfirm()
	}
}

type fakeView[T any] struct {
	items []T
	sets  int
}

func (v *fakeView[T]) SetItems(items []T) {
	v.items = items
	v.sets++
}

type fakeOpener struct {
	opened []Form
}

func (o *fakeOpener) OpenForm(form Form) {
	o.opened = append(o.opened, form)
}

// recordingService is an in-memory EntityService that records calls
type recordingService[T any] struct {
	items   []T
	calls   []string
	saveErr error
	findErr error
	onSave  func(T)
}

func (s *recordingService[T]) FindAll(ctx context.Context) ([]T, error) {
	s.calls = append(s.calls, "findAll")
	return s.items, s.findErr
}

func (s *recordingService[T]) SaveOrUpdate(ctx context.Context, entity T) error {
	s.calls = append(s.calls, "saveOrUpdate")
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.onSave != nil {
		s.onSave(entity)
	}
	return nil
}

func (s *recordingService[T]) Remove(ctx context.Context, entity T) error {
	s.calls = append(s.calls, "remove")
	return s.saveErr
}

func departments(names ...string) []*models.Department {
	out := make([]*models.Department, 0, len(names))
	for i, n := range names {
		out = append(out, &models.Department{ID: models.IntPtr(i + 1), Name: n})
	}
	return out
}
