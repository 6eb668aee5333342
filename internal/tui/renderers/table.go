// Package renderers draws entity collections as text tables. Each table is
// declared as a list of columns plus a map from column field to the function
// that extracts and formats that cell; one generic loop renders them all.
package renderers

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/staffdesk/internal/tui/theme"
)

// Column describes one table column
type Column struct {
	Field string
	Title string
	Width int
	// Color is an optional foreground for the cell text
	Color string
	// Action marks button-like cells that are dropped from plain output
	Action bool
}

// CellRenderers maps a column field to the function producing its text
type CellRenderers[T any] map[string]func(T) string

// NoSelection renders a table without a highlighted row
const NoSelection = -1

// RenderTable renders rows under a header line. Cells without a renderer
// are left blank.
func RenderTable[T any](columns []Column, cells CellRenderers[T], rows []T, selected int, emptyMsg string) string {
	var output strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.HeaderFg))
	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TableBorder))
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.SelectedBg))

	headers := make([]string, len(columns))
	total := 0
	for i, col := range columns {
		headers[i] = pad(col.Title, col.Width)
		total += col.Width + 1
	}
	output.WriteString("  " + headerStyle.Render(strings.Join(headers, " ")))
	output.WriteString("\n")
	output.WriteString("  " + separatorStyle.Render(strings.Repeat("─", max(total-1, 1))))
	output.WriteString("\n")

	if len(rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true)
		output.WriteString(emptyStyle.Render("  " + emptyMsg))
		output.WriteString("\n")
		return output.String()
	}

	for i, row := range rows {
		isSelected := i == selected

		rendered := make([]string, len(columns))
		for j, col := range columns {
			text := ""
			if render, ok := cells[col.Field]; ok {
				text = render(row)
			}
			text = pad(text, col.Width)

			switch {
			case isSelected:
				rendered[j] = selectedStyle.Render(text)
			case col.Color != "":
				rendered[j] = lipgloss.NewStyle().Foreground(lipgloss.Color(col.Color)).Render(text)
			default:
				rendered[j] = normalStyle.Render(text)
			}
		}

		gap := " "
		prefix := "  "
		if isSelected {
			gap = selectedStyle.Render(" ")
			prefix = "> "
		}
		output.WriteString(prefix + strings.Join(rendered, gap))
		output.WriteString("\n")
	}

	return output.String()
}

// WithoutActions drops button-like columns, for output that cannot be
// clicked or keyed
func WithoutActions(columns []Column) []Column {
	out := make([]Column, 0, len(columns))
	for _, col := range columns {
		if !col.Action {
			out = append(out, col)
		}
	}
	return out
}

// pad truncates or right-pads s to exactly width runes
func pad(s string, width int) string {
	s = truncateString(s, width)
	return s + strings.Repeat(" ", max(width-len([]rune(s)), 0))
}

// truncateString truncates a string to maxLen runes with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
