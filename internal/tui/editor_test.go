package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/staffdesk/internal/controllers"
	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/tui/state"
)

type stubDialogs struct{}

func (stubDialogs) ShowError(string, string, string) {}
func (stubDialogs) Confirm(string, string, func()) {}

type stubDepartments struct {
	saved []*models.Department
}

func (s *stubDepartments) FindAll(context.Context) ([]*models.Department, error) { return nil, nil }
func (s *stubDepartments) SaveOrUpdate(_ context.Context, d *models.Department) error {
	s.saved = append(s.saved, d)
	if d.ID == nil {
		d.ID = models.IntPtr(len(s.saved))
	}
	return nil
}
func (s *stubDepartments) Remove(context.Context, *models.Department) error { return nil }

func TestEditor_DepartmentRoundTrip(t *testing.T) {
	notes := state.NewNotificationState()
	editor := NewEditor(notes)
	svc := &stubDepartments{}

	form := controllers.NewDepartmentForm(context.Background(), stubDialogs{})
	form.SetDepartment(&models.Department{ID: models.IntPtr(7), Name: "Books"})
	form.SetService(svc)
	form.UpdateFormData()

	editor.Open(form)
	assert.True(t, editor.IsOpen())
	assert.False(t, editor.IsNew())
	assert.Contains(t, editor.View(), "Id: 7")

	require.NoError(t, editor.Save())
	assert.False(t, editor.IsOpen())
	require.Len(t, svc.saved, 1)
	assert.Equal(t, 7, svc.saved[0].GetID())
	assert.Equal(t, "Books", svc.saved[0].Name)

	all := notes.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Department saved", all[0].Message)
}

func TestEditor_CancelClosesForm(t *testing.T) {
	editor := NewEditor(state.NewNotificationState())
	form := controllers.NewDepartmentForm(context.Background(), stubDialogs{})
	form.SetDepartment(&models.Department{})
	form.UpdateFormData()

	editor.Open(form)
	assert.True(t, editor.IsNew())
	assert.Contains(t, editor.View(), "Id: (new)")

	editor.Cancel()
	assert.False(t, editor.IsOpen())
	assert.Equal(t, controllers.FormClosed, form.State())

	editor.Close()
	assert.Nil(t, editor.Form())
	assert.Empty(t, editor.View())
}
