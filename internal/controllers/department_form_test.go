package controllers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/staffdesk/internal/events"
	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/validation"
)

func TestDepartmentForm_RequiresName(t *testing.T) {
	t.Parallel()
	svc := &recordingService[*models.Department]{}
	form := NewDepartmentForm(context.Background(), &fakeDialogs{})
	form.SetDepartment(NewDepartment())
	form.SetService(svc)
	form.UpdateFormData()

	form.Fields.Name = "   "
	err := form.Save()

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{FieldName}, vErr.Fields())
	assert.Equal(t, validation.MsgRequired, form.ErrorLabel(FieldName))
	assert.True(t, form.IsOpen())
	assert.Empty(t, svc.calls)
}

func TestDepartmentForm_EditKeepsID(t *testing.T) {
	t.Parallel()
	var saved *models.Department
	svc := &recordingService[*models.Department]{onSave: func(d *models.Department) { saved = d }}

	form := NewDepartmentForm(context.Background(), &fakeDialogs{})
	form.SetDepartment(&models.Department{ID: models.IntPtr(4), Name: "Books"})
	form.SetService(svc)
	form.UpdateFormData()
	assert.Equal(t, "4", form.Fields.ID)

	notified := 0
	form.Subscribe(events.DataChangeFunc(func() { notified++ }))

	form.Fields.Name = "Rare Books"
	require.NoError(t, form.Save())

	require.NotNil(t, saved)
	require.NotNil(t, saved.ID)
	assert.Equal(t, 4, *saved.ID)
	assert.Equal(t, "Rare Books", saved.Name)
	assert.Equal(t, 1, notified)
	assert.Equal(t, FormClosed, form.State())
	assert.Equal(t, "Enter Department data", form.Title())
}
