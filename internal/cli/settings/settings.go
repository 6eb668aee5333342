// Package settings holds the cli commands that inspect and write the config
// file
//
// e.g., staffdesk config ...
package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
	"github.com/thenoetrevino/staffdesk/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the configuration",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}

// ShowCmd prints the effective configuration after file, environment and
// defaults are applied
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			cfg, err := config.Load()
			if err != nil {
				return formatter.Fail(err)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return formatter.Fail(err)
			}
			return formatter.Success(cfg, string(data))
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// InitCmd writes the default configuration file
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)
			force, _ := cmd.Flags().GetBool("force")

			path, err := config.Path()
			if err != nil {
				return formatter.Fail(err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return formatter.Fail(cli.Exit(cli.ExitUsage,
					fmt.Errorf("%s already exists (use --force to overwrite)", path)))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return formatter.Fail(err)
			}

			cfg, err := config.Load()
			if err != nil {
				return formatter.Fail(err)
			}
			written, err := cfg.Save()
			if err != nil {
				return formatter.Fail(err)
			}

			if formatter.Quiet {
				_, err := fmt.Fprintln(formatter.Out, written)
				return err
			}
			return formatter.Success(map[string]string{"path": written}, "✓ Wrote "+written)
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)
	return cmd
}
