package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
	"github.com/thenoetrevino/staffdesk/internal/cli/department"
	"github.com/thenoetrevino/staffdesk/internal/cli/seller"
	"github.com/thenoetrevino/staffdesk/internal/cli/settings"
	"github.com/thenoetrevino/staffdesk/internal/launcher"
)

// NewRootCmd builds the command tree. Subcommands open the store through
// open; running with no subcommand starts the TUI.
func NewRootCmd(open cli.Opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "staffdesk",
		Short: "Staffdesk - sellers and departments",
		Long: `Staffdesk keeps a small registry of sellers and the departments they
belong to. Run it with no arguments for the terminal UI, or use the
subcommands for scripting.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(department.DepartmentCmd(open))
	rootCmd.AddCommand(seller.SellerCmd(open))
	rootCmd.AddCommand(settings.ConfigCmd())

	return rootCmd
}

// Execute runs the root command and exits with the mapped exit code
func Execute() {
	if err := NewRootCmd(cli.NewCLI).Execute(); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps err to the process exit code. cobra reports missing
// required flags with a plain error that skips the flag error func.
func exitCode(err error) int {
	if err != nil && strings.HasPrefix(err.Error(), "required flag(s)") {
		return cli.ExitUsage
	}
	return cli.ExitCodeFor(err)
}
