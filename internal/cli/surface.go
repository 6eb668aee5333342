package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/controllers"
)

// Rows is the table a command's list controller fills
type Rows[T any] struct {
	Items []T
}

var _ controllers.TableView[int] = (*Rows[int])(nil)

// SetItems replaces the rows
func (r *Rows[T]) SetItems(items []T) {
	r.Items = items
}

// FormCapture holds the form a list controller opened so the command can
// fill it from flags
type FormCapture struct {
	Form controllers.Form
}

var _ controllers.FormOpener = (*FormCapture)(nil)

// OpenForm records the opened form
func (c *FormCapture) OpenForm(form controllers.Form) {
	c.Form = form
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// Open runs the opener with the command's context
func Open(cmd *cobra.Command, open Opener) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return open(ctx)
}

// CloseQuietly closes c and logs a failure
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}
