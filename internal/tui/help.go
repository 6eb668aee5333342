package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/staffdesk/internal/config"
)

// Glamour renderers are costly to build, so keep one per wrap width
var helpRenderers sync.Map

// helpMarkdown lists the key bindings as a markdown table
func helpMarkdown(km config.KeyMappings) string {
	rows := [][2]string{
		{km.NextTab + " / tab", "Next tab"},
		{km.PrevTab + " / shift+tab", "Previous tab"},
		{km.NextRow + " / down", "Next row"},
		{km.PrevRow + " / up", "Previous row"},
		{km.NewItem, "New entry"},
		{km.EditItem + " / enter", "Edit selected row"},
		{km.RemoveItem, "Remove selected row"},
		{km.Refresh, "Reload from the store"},
		{km.SaveForm, "Save the open form"},
		{"esc", "Cancel the open form"},
		{km.Quit + " / ctrl+c", "Quit"},
	}

	var b strings.Builder
	b.WriteString("# Keys\n\n| Key | Action |\n|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", row[0], row[1])
	}
	return b.String()
}

// renderHelp renders the key bindings, falling back to plain markdown when
// glamour cannot
func renderHelp(km config.KeyMappings, width int) string {
	md := helpMarkdown(km)

	var renderer *glamour.TermRenderer
	if cached, ok := helpRenderers.Load(width); ok {
		renderer = cached.(*glamour.TermRenderer)
	} else {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		helpRenderers.Store(width, r)
		renderer = r
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
