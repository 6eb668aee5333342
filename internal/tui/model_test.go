package tui

import (
	"context"
	"database/sql"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/staffdesk/internal/app"
	"github.com/thenoetrevino/staffdesk/internal/controllers"
	"github.com/thenoetrevino/staffdesk/internal/testutil"
	"github.com/thenoetrevino/staffdesk/internal/tui/state"
)

func setupModel(t *testing.T, departments ...string) (Model, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	for _, name := range departments {
		testutil.CreateTestDepartment(t, db, name)
	}

	m := InitialModel(context.Background(), app.New(db), nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, db
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(m Model, code rune, text string) Model {
	return send(m, tea.KeyPressMsg(tea.Key{Code: code, Text: text}))
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, r, string(r))
	}
	return m
}

func ctrlS(m Model) Model {
	return send(m, tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl}))
}

func TestInitialModel_LoadsTables(t *testing.T) {
	m, _ := setupModel(t, "Books", "Computers")

	assert.Equal(t, state.ListMode, m.UiState.Mode())
	require.Equal(t, 2, m.Departments.Len())
	assert.Equal(t, "Books", m.Departments.Items()[0].Name)
	assert.Zero(t, m.Sellers.Len())
}

func TestView_LoadingBeforeWindowSize(t *testing.T) {
	db := testutil.SetupTestDB(t)
	m := InitialModel(context.Background(), app.New(db), nil)

	assert.Equal(t, "Loading...", m.View().Content)
}

func TestView_ShowsActiveTable(t *testing.T) {
	m, db := setupModel(t, "Books")
	testutil.CreateTestSeller(t, db, "Ann", m.Departments.Items()[0].GetID())

	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Contains(t, view.Content, "Books")
	assert.Contains(t, view.Content, "[edit]")
	assert.Contains(t, view.Content, "Departments (1)")

	m = press(m, 'l', "l")
	assert.Equal(t, state.SellersTab, m.UiState.Tab())
	assert.Contains(t, m.View().Content, "Ann")
}

func TestUpdate_RowNavigation(t *testing.T) {
	m, _ := setupModel(t, "Books", "Computers", "Fashion")

	m = press(m, 'j', "j")
	m = press(m, 'j', "j")
	assert.Equal(t, 2, m.Departments.Selected())

	m = press(m, 'j', "j")
	assert.Equal(t, 2, m.Departments.Selected())

	m = press(m, 'k', "k")
	assert.Equal(t, 1, m.Departments.Selected())
}

func TestUpdate_NewDepartment(t *testing.T) {
	m, db := setupModel(t)

	m = press(m, 'n', "n")
	require.Equal(t, state.FormMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Enter Department data")

	m = typeText(m, "Sales")
	m = ctrlS(m)

	assert.Equal(t, state.ListMode, m.UiState.Mode())
	assert.Nil(t, m.Editor.Form())
	assert.Equal(t, 1, testutil.CountRows(t, db, "department"))
	require.Equal(t, 1, m.Departments.Len())
	assert.Equal(t, "Sales", m.Departments.Items()[0].Name)
	assert.True(t, m.Notifications.HasAny())
}

func TestUpdate_InvalidFormStaysOpen(t *testing.T) {
	m, db := setupModel(t)

	m = press(m, 'n', "n")
	m = ctrlS(m)

	assert.Equal(t, state.FormMode, m.UiState.Mode())
	assert.True(t, m.Editor.IsOpen())
	assert.Contains(t, m.View().Content, "Field can't be empty")
	assert.Zero(t, testutil.CountRows(t, db, "department"))

	// Fixing the field clears the label on the next save
	m = typeText(m, "Sales")
	m = ctrlS(m)
	assert.Equal(t, state.ListMode, m.UiState.Mode())
}

func TestUpdate_EscCancelsForm(t *testing.T) {
	m, db := setupModel(t)

	m = press(m, 'n', "n")
	m = typeText(m, "Draft")
	m = send(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))

	assert.Equal(t, state.ListMode, m.UiState.Mode())
	assert.Nil(t, m.Editor.Form())
	assert.Zero(t, testutil.CountRows(t, db, "department"))
}

func TestUpdate_EditDepartment(t *testing.T) {
	m, db := setupModel(t, "Bookz")

	m = press(m, 'e', "e")
	require.Equal(t, state.FormMode, m.UiState.Mode())
	assert.False(t, m.Editor.IsNew())

	m = send(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyBackspace}))
	m = typeText(m, "s")
	m = ctrlS(m)

	assert.Equal(t, state.ListMode, m.UiState.Mode())
	assert.Equal(t, 1, testutil.CountRows(t, db, "department"))
	assert.Equal(t, "Books", m.Departments.Items()[0].Name)
}

func TestUpdate_NewSeller(t *testing.T) {
	m, db := setupModel(t, "Books", "Fashion")
	m = press(m, 'l', "l")

	m = press(m, 'n', "n")
	require.Equal(t, state.FormMode, m.UiState.Mode())
	form, ok := m.Editor.Form().(*controllers.SellerForm)
	require.True(t, ok)
	assert.Len(t, form.Departments(), 2)

	tab := tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	m = typeText(m, "Ann")
	m = send(m, tab)
	m = typeText(m, "ann@example.com")
	m = send(m, tab)
	m = typeText(m, "25/04/1990")
	m = send(m, tab)
	m = typeText(m, "3200.5")
	m = send(m, tab)
	m = press(m, 'l', "l")
	m = ctrlS(m)

	require.Equal(t, state.ListMode, m.UiState.Mode())
	require.Equal(t, 1, m.Sellers.Len())
	seller := m.Sellers.Items()[0]
	assert.Equal(t, "Ann", seller.Name)
	assert.Equal(t, "Fashion", seller.DepartmentName())
	assert.Equal(t, "3200.50", seller.BaseSalary.Decimal.StringFixed(2))
	assert.True(t, testutil.Date(1990, 4, 25).Equal(seller.BirthDate))
	assert.Equal(t, 1, testutil.CountRows(t, db, "seller"))
}

func TestUpdate_SellerInvalidDate(t *testing.T) {
	m, _ := setupModel(t, "Books")
	m = press(m, 'l', "l")
	m = press(m, 'n', "n")

	tab := tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	m = send(m, tab)
	m = send(m, tab)
	m = typeText(m, "31/31/1990")
	m = ctrlS(m)

	assert.Equal(t, state.FormMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Invalid date (dd/mm/yyyy)")
}

func TestUpdate_RemoveConfirmed(t *testing.T) {
	m, db := setupModel(t, "Books")

	m = press(m, 'd', "d")
	require.Equal(t, state.ConfirmMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, controllers.MsgConfirmDelete)

	m = press(m, 'y', "y")
	assert.Equal(t, state.ListMode, m.UiState.Mode())
	assert.Zero(t, testutil.CountRows(t, db, "department"))
	assert.Zero(t, m.Departments.Len())
}

func TestUpdate_RemoveDeclined(t *testing.T) {
	m, db := setupModel(t, "Books")

	m = press(m, 'd', "d")
	m = press(m, 'n', "n")

	assert.Equal(t, state.ListMode, m.UiState.Mode())
	assert.Equal(t, 1, testutil.CountRows(t, db, "department"))
}

func TestUpdate_RemoveReferencedDepartment(t *testing.T) {
	m, db := setupModel(t, "Books")
	testutil.CreateTestSeller(t, db, "Ann", m.Departments.Items()[0].GetID())

	m = press(m, 'd', "d")
	m = press(m, 'y', "y")

	require.Equal(t, state.ErrorMode, m.UiState.Mode())
	require.NotNil(t, m.Dialogs.Error())
	assert.Equal(t, controllers.TitleRemoveError, m.Dialogs.Error().Title)
	assert.Contains(t, m.View().Content, controllers.TitleRemoveError)

	m = send(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	assert.Equal(t, state.ListMode, m.UiState.Mode())
	assert.Equal(t, 1, m.Departments.Len())
	assert.Equal(t, 1, testutil.CountRows(t, db, "department"))
}

func TestUpdate_HelpAndQuit(t *testing.T) {
	m, _ := setupModel(t)

	m = press(m, '?', "?")
	assert.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Keys")

	m = send(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
	assert.Equal(t, state.ListMode, m.UiState.Mode())

	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: 'q', Text: "q"}))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
