package department

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
)

// ListCmd returns the department list subcommand
func ListCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, open)
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, open cli.Opener) error {
	formatter := cli.NewFormatter(cmd)

	c, err := cli.Open(cmd, open)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cli.CloseQuietly(c)

	s := newSession(c, cli.NewDialogs(true))
	if err := s.list.UpdateTableView(); err != nil {
		return formatter.Fail(err)
	}
	rows := s.rows.Items

	if formatter.Quiet {
		for _, d := range rows {
			if _, err := fmt.Fprintln(formatter.Out, d.GetID()); err != nil {
				return err
			}
		}
		return nil
	}

	return formatter.Success(rows, renderTable(rows))
}
