package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab is one entry of the tab bar with the number of rows behind it
type Tab struct {
	Name  string
	Count int
}

// Label is the text shown inside the tab
func (t Tab) Label() string {
	return fmt.Sprintf("%s (%d)", t.Name, t.Count)
}

// RenderTabs draws the tab bar. The gap after the tabs is filled up to
// width, and a notification, when given, is right-aligned in it.
//
//	╭───────────────────╮╭──────────────╮
//	│ Departments (4)   ││ Sellers (12) │───────── [saved]
func RenderTabs(tabs []Tab, selectedIdx int, width int, notificationContent string) string {
	rendered := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		style := TabStyle
		if i == selectedIdx {
			style = ActiveTabStyle
		}
		rendered = append(rendered, style.Render(tab.Label()))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	used := lipgloss.Width(row) + lipgloss.Width(notificationContent) + 2
	gap := TabGapStyle.Render(strings.Repeat(" ", max(width-used, 0)))

	parts := []string{row, gap}
	if notificationContent != "" {
		parts = append(parts, notificationContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}
