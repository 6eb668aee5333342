package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/staffdesk/internal/tui/state"
)

// Update handles all incoming messages and returns the updated model
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	// Cursor blinks and other widget messages go to the open form
	if m.UiState.Mode() == state.FormMode {
		return m, m.Editor.Update(msg)
	}
	return m, nil
}

// handleKey dispatches keyboard input based on the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.FormMode:
		return m.handleFormMode(msg)
	case state.ConfirmMode:
		return m.handleConfirmMode(msg)
	case state.ErrorMode:
		return m.handleErrorMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleListMode(msg)
	}
}

func (m Model) handleListMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	m.Notifications.Clear()

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
	case km.NextTab, "tab":
		m.UiState.NextTab()
		m.refreshActive()
	case km.PrevTab, "shift+tab":
		m.UiState.PrevTab()
		m.refreshActive()
	case km.NextRow, "down":
		m.moveDown()
	case km.PrevRow, "up":
		m.moveUp()
	case km.Refresh:
		m.refreshActive()
	case km.NewItem:
		m.onNew()
	case km.EditItem, "enter":
		m.onEdit()
	case km.RemoveItem:
		m.requestRemove()
	}

	if m.UiState.Mode() == state.FormMode {
		return m, m.Editor.Focus()
	}
	return m, nil
}

func (m Model) moveDown() {
	if m.UiState.Tab() == state.SellersTab {
		m.Sellers.MoveDown()
		return
	}
	m.Departments.MoveDown()
}

func (m Model) moveUp() {
	if m.UiState.Tab() == state.SellersTab {
		m.Sellers.MoveUp()
		return
	}
	m.Departments.MoveUp()
}

func (m Model) onNew() {
	if m.UiState.Tab() == state.SellersTab {
		m.sellerList.OnNew()
		return
	}
	m.departmentList.OnNew()
}

func (m Model) onEdit() {
	if m.UiState.Tab() == state.SellersTab {
		if seller, ok := m.Sellers.Current(); ok {
			m.sellerList.OnEdit(seller)
		}
		return
	}
	if department, ok := m.Departments.Current(); ok {
		m.departmentList.OnEdit(department)
	}
}

func (m Model) requestRemove() {
	if m.UiState.Tab() == state.SellersTab {
		if seller, ok := m.Sellers.Current(); ok {
			m.sellerList.RequestRemove(seller)
		}
		return
	}
	if department, ok := m.Departments.Current(); ok {
		m.departmentList.RequestRemove(department)
	}
}

func (m Model) handleFormMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == m.Config.KeyMappings.SaveForm {
		_ = m.Editor.Save()
		m.closeEditorIfDone()
		return m, nil
	}

	cmd := m.Editor.Update(msg)
	if m.Editor.Aborted() {
		m.Editor.Cancel()
		m.closeEditorIfDone()
		return m, nil
	}
	return m, cmd
}

// closeEditorIfDone drops a form that was persisted or cancelled
func (m Model) closeEditorIfDone() {
	if m.Editor.Form() == nil || m.Editor.IsOpen() {
		return
	}
	m.Editor.Close()
	if m.UiState.Mode() == state.FormMode {
		m.UiState.SetMode(state.ListMode)
	}
}

func (m Model) handleConfirmMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	dialog := m.Dialogs.Confirm()
	if dialog == nil {
		m.UiState.SetMode(state.ListMode)
		return m, nil
	}

	switch msg.String() {
	case "y":
		m.confirm(dialog.OnConfirm)
	case "n", "esc":
		m.UiState.SetMode(m.Dialogs.Dismiss())
	case "enter":
		if m.surface.confirm != nil && m.surface.confirm.Value() {
			m.confirm(dialog.OnConfirm)
		} else {
			m.UiState.SetMode(m.Dialogs.Dismiss())
		}
	default:
		if m.surface.confirm != nil {
			_, _ = m.surface.confirm.Update(msg)
		}
	}
	return m, nil
}

// confirm closes the dialog before running its action so that an error
// raised by the action can open its own dialog
func (m Model) confirm(onConfirm func()) {
	m.UiState.SetMode(m.Dialogs.Dismiss())
	m.surface.confirm = nil
	if onConfirm != nil {
		onConfirm()
	}
}

func (m Model) handleErrorMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "space", " ", "q":
		m.UiState.SetMode(m.Dialogs.Dismiss())
		if m.UiState.Mode() == state.FormMode && !m.Editor.IsOpen() {
			m.Editor.Close()
			m.UiState.SetMode(state.ListMode)
		}
	}
	return m, nil
}

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", m.Config.KeyMappings.ShowHelp:
		m.UiState.SetMode(state.ListMode)
	}
	return m, nil
}
