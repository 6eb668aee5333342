package seller

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
	"github.com/thenoetrevino/staffdesk/internal/models"
)

// ListCmd returns the seller list subcommand
func ListCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sellers",
		Long: `List sellers, optionally only those of one department.

Examples:
  staffdesk seller list
  staffdesk seller list --department=2 --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, open)
		},
	}
	cmd.Flags().Int("department", 0, "Only list sellers of this department ID")
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

	var rows []*models.Seller
	if cmd.Flags().Changed("department") {
		id, _ := cmd.Flags().GetInt("department")
		rows, err = c.App.SellerService.FindByDepartment(c.Context(), &models.Department{ID: models.IntPtr(id)})
		if err != nil {
			return formatter.Fail(err)
		}
	} else {
		s := newSession(c, cli.NewDialogs(true))
		if err := s.list.UpdateTableView(); err != nil {
			return formatter.Fail(err)
		}
		rows = s.rows.Items
	}

	if formatter.Quiet {
		for _, row := range rows {
			if _, err := fmt.Fprintln(formatter.Out, row.GetID()); err != nil {
				return err
			}
		}
		return nil
	}

	return formatter.Success(rows, renderTable(rows))
}
