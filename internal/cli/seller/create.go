package seller

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
)

// CreateCmd returns the seller create subcommand
func CreateCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new seller",
		Long: `Create a new seller. Every field is validated together and all
failures are reported at once.

Examples:
  staffdesk seller create \
    --name="Maria Green" \
    --email="maria@example.com" \
    --birth-date=25/04/1990 \
    --salary=3200.50 \
    --department=2

  # Quiet mode for bash capture
  SELLER_ID=$(staffdesk seller create --name=... --quiet)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, open)
		},
	}
	addFieldFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, open cli.Opener) error {
	formatter := cli.NewFormatter(cmd)

	c, err := cli.Open(cmd, open)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cli.CloseQuietly(c)

	s := newSession(c, cli.NewDialogs(true))
	s.list.OnNew()
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
	return formatter.Success(seller, renderCard("✓ Seller created", seller))
}
