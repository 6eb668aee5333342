package department

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
)

// UpdateCmd returns the department update subcommand
func UpdateCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, open)
		},
	}

	cmd.Flags().Int("id", 0, "Department ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("name", "", "New department name")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, open cli.Opener) error {
	formatter := cli.NewFormatter(cmd)
	id, _ := cmd.Flags().GetInt("id")

	c, err := cli.Open(cmd, open)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cli.CloseQuietly(c)

	s := newSession(c, cli.NewDialogs(true))
	row, err := s.find(id)
	if err != nil {
		return formatter.Fail(err)
	}

	s.list.OnEdit(row)
	form, err := s.form()
	if err != nil {
		return formatter.Fail(err)
	}

	if cmd.Flags().Changed("name") {
		form.Fields.Name, _ = cmd.Flags().GetString("name")
	}
	if err := form.Save(); err != nil {
		return formatter.Fail(err)
	}

	d := form.Department()
	return formatter.Success(d, fmt.Sprintf("✓ Department %d updated: %s", d.GetID(), d.Name))
}
