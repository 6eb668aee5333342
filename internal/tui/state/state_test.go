package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableState_SelectionStaysInRange(t *testing.T) {
	s := NewTableState[string]()

	_, ok := s.Current()
	assert.False(t, ok, "empty table has no current row")

	s.SetItems([]string{"a", "b", "c"})
	s.MoveUp()
	assert.Equal(t, 0, s.Selected())

	s.MoveDown()
	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 2, s.Selected())

	// Shrinking the collection pulls the selection back
	s.SetItems([]string{"a"})
	assert.Equal(t, 0, s.Selected())
	row, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "a", row)
}

func TestUIState_Tabs(t *testing.T) {
	s := NewUIState()
	if s.Tab() != DepartmentsTab {
		t.Fatalf("initial tab = %v, want Departments", s.Tab())
	}

	s.NextTab()
	assert.Equal(t, SellersTab, s.Tab())
	s.NextTab()
	assert.Equal(t, DepartmentsTab, s.Tab())
	s.PrevTab()
	assert.Equal(t, SellersTab, s.Tab())
	assert.Equal(t, "Sellers", s.Tab().String())
}

func TestDialogState_ReturnsToPreviousMode(t *testing.T) {
	s := NewDialogState()

	s.ShowError(ErrorDialog{Title: "Error saving object"}, FormMode)
	require.NotNil(t, s.Error())
	assert.Equal(t, FormMode, s.Dismiss())
	assert.Nil(t, s.Error())

	called := false
	s.ShowConfirm(ConfirmDialog{Title: "Confirmation", OnConfirm: func() { called = true }}, ListMode)
	require.NotNil(t, s.Confirm())
	s.Confirm().OnConfirm()
	assert.True(t, called)
	assert.Equal(t, ListMode, s.Dismiss())
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	assert.False(t, s.HasAny())

	s.Add(LevelInfo, "Seller saved")
	s.Add(LevelError, "Error removing object")
	assert.Len(t, s.All(), 2)

	s.ClearLevel(LevelError)
	require.Len(t, s.All(), 1)
	assert.Equal(t, "Seller saved", s.All()[0].Message)

	s.Clear()
	assert.False(t, s.HasAny())
}
