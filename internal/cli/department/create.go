package department

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
)

// CreateCmd returns the department create subcommand
func CreateCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new department",
		Long: `Create a new department.

Examples:
  # Human-readable output
  staffdesk department create --name="Sales"

  # Quiet mode for bash capture
  DEPT_ID=$(staffdesk department create --name="Sales" --quiet)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, open)
		},
	}

	cmd.Flags().String("name", "", "Department name")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, open cli.Opener) error {
	formatter := cli.NewFormatter(cmd)
	name, _ := cmd.Flags().GetString("name")

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

	form.Fields.Name = name
	if err := form.Save(); err != nil {
		return formatter.Fail(err)
	}

	d := form.Department()
	return formatter.Success(d, fmt.Sprintf("✓ Department '%s' created successfully (ID: %d)", d.Name, d.GetID()))
}
