package seller

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
	"github.com/thenoetrevino/staffdesk/internal/controllers"
)

// DeleteCmd returns the seller delete subcommand
func DeleteCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a seller",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, open)
		},
	}

	cmd.Flags().Int("id", 0, "Seller ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Bool("force", false, "Skip confirmation prompt")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, open cli.Opener) error {
	formatter := cli.NewFormatter(cmd)
	id, _ := cmd.Flags().GetInt("id")
	force, _ := cmd.Flags().GetBool("force")

	c, err := cli.Open(cmd, open)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cli.CloseQuietly(c)

	dialogs := cli.NewDialogs(force || formatter.JSON || formatter.Quiet)
	s := newSession(c, dialogs)
	row, err := s.find(id)
	if err != nil {
		return formatter.Fail(err)
	}

	confirmed := false
	var removeErr error
	dialogs.Confirm(controllers.TitleConfirmation, fmt.Sprintf("%s (%s)", controllers.MsgConfirmDelete, row.Name), func() {
		confirmed = true
		removeErr = s.list.Remove(row)
	})
	if err := dialogs.Err(); err != nil {
		return formatter.Fail(err)
	}
	if !confirmed {
		_, err := fmt.Fprintln(formatter.Out, "Deletion cancelled")
		return err
	}
	if removeErr != nil {
		return formatter.Fail(removeErr)
	}

	return formatter.Success(row, fmt.Sprintf("✓ Seller %d deleted", id))
}
