package seller

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
)

// UpdateCmd returns the seller update subcommand
func UpdateCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a seller",
		Long: `Update a seller. Only the flags given are changed.

Examples:
  staffdesk seller update --id=4 --salary=4100
  staffdesk seller update --id=4 --department=1 --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, open)
		},
	}

	cmd.Flags().Int("id", 0, "Seller ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	addFieldFlags(cmd)
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

	if err := applyFlags(cmd, form); err != nil {
		return formatter.Fail(err)
	}
	if err := form.Save(); err != nil {
		return formatter.Fail(err)
	}

	seller := form.Seller()
	return formatter.Success(seller, renderCard("✓ Seller updated", seller))
}
