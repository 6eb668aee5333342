package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/staffdesk/internal/tui/components"
	"github.com/thenoetrevino/staffdesk/internal/tui/notifications"
	"github.com/thenoetrevino/staffdesk/internal/tui/renderers"
	"github.com/thenoetrevino/staffdesk/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.viewBoard()

	var overlay string
	switch m.UiState.Mode() {
	case state.FormMode:
		overlay = m.viewForm()
	case state.ConfirmMode:
		overlay = m.viewConfirm()
	case state.ErrorMode:
		overlay = m.viewError()
	case state.HelpMode:
		overlay = m.viewHelp()
	}

	if overlay == "" {
		view.Content = base
		return view
	}

	x := max((m.UiState.Width()-lipgloss.Width(overlay))/2, 0)
	y := max((m.UiState.Height()-lipgloss.Height(overlay))/2, 0)
	canvas := lipgloss.NewCanvas(
		lipgloss.NewLayer(base),
		lipgloss.NewLayer(overlay).X(x).Y(y),
	)
	view.Content = canvas.Render()
	return view
}

// viewBoard renders the tab bar, the active table and the status bar
func (m Model) viewBoard() string {
	counts := map[state.Tab]int{
		state.DepartmentsTab: m.Departments.Len(),
		state.SellersTab:     m.Sellers.Len(),
	}
	tabItems := make([]components.Tab, 0, len(state.Tabs))
	for _, tab := range state.Tabs {
		tabItems = append(tabItems, components.Tab{Name: tab.String(), Count: counts[tab]})
	}

	var notification string
	if all := m.Notifications.All(); len(all) > 0 {
		notification = notifications.RenderInlineFromState(all[len(all)-1])
	}

	tabs := components.RenderTabs(tabItems, int(m.UiState.Tab()), m.UiState.Width(), notification)
	status := components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Hint:  m.hint(),
	})

	// Reserve rows for the tab bar and the status bar
	tableHeight := max(m.UiState.Height()-lipgloss.Height(tabs)-lipgloss.Height(status), 1)
	table := lipgloss.NewStyle().
		Padding(1, 1, 0, 1).
		Height(tableHeight).
		MaxHeight(tableHeight).
		Render(m.viewTable())

	return lipgloss.JoinVertical(lipgloss.Left, tabs, table, status)
}

func (m Model) viewTable() string {
	if m.UiState.Tab() == state.SellersTab {
		return renderers.RenderTable(
			renderers.SellerColumns(), renderers.SellerCells,
			m.Sellers.Items(), m.Sellers.Selected(), "No sellers yet. Press "+m.Config.KeyMappings.NewItem+" to add one.",
		)
	}
	return renderers.RenderTable(
		renderers.DepartmentColumns(), renderers.DepartmentCells,
		m.Departments.Items(), m.Departments.Selected(), "No departments yet. Press "+m.Config.KeyMappings.NewItem+" to add one.",
	)
}

func (m Model) hint() string {
	km := m.Config.KeyMappings
	switch m.UiState.Mode() {
	case state.FormMode:
		return km.SaveForm + " save  tab next  esc cancel"
	case state.ConfirmMode:
		return "y yes  n no"
	case state.ErrorMode:
		return "enter dismiss"
	case state.HelpMode:
		return "esc close"
	default:
		return strings.Join([]string{
			km.NewItem + " new",
			km.EditItem + " edit",
			km.RemoveItem + " remove",
			km.ShowHelp + " help",
			km.Quit + " quit",
		}, "  ")
	}
}

func (m Model) viewForm() string {
	form := m.Editor.Form()
	if form == nil {
		return ""
	}

	box := components.EditBoxStyle
	if m.Editor.IsNew() {
		box = components.CreateBoxStyle
	}

	content := components.TitleStyle.Render(form.Title()) + "\n\n" +
		m.Editor.View() +
		components.SubtleStyle.Render(m.Config.KeyMappings.SaveForm+" save • esc cancel")
	return box.Width(m.dialogWidth()).Render(content)
}

func (m Model) viewConfirm() string {
	dialog := m.Dialogs.Confirm()
	if dialog == nil {
		return ""
	}

	content := components.TitleStyle.Render(dialog.Title) + "\n\n"
	if m.surface.confirm != nil {
		content += m.surface.confirm.View()
	} else {
		content += dialog.Message
	}
	content += "\n\n" + components.SubtleStyle.Render("y yes • n no")
	return components.ConfirmBoxStyle.Render(content)
}

func (m Model) viewError() string {
	dialog := m.Dialogs.Error()
	if dialog == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(dialog.Title))
	b.WriteString("\n\n")
	if dialog.Header != "" {
		b.WriteString(dialog.Header)
		b.WriteString("\n")
	}
	b.WriteString(dialog.Message)
	b.WriteString("\n\n")
	b.WriteString(components.SubtleStyle.Render("enter dismiss"))
	return components.ErrorBoxStyle.Width(m.dialogWidth()).Render(b.String())
}

func (m Model) viewHelp() string {
	return components.HelpBoxStyle.Render(renderHelp(m.Config.KeyMappings, m.dialogWidth()))
}

func (m Model) dialogWidth() int {
	return min(max(m.UiState.Width()*2/3, 40), 80)
}
