package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCommand creates the config command with its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
		Long: `Inspect the graphedit configuration.

The config file is TOML. Missing files fall back to built-in defaults.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.cfg.Encode()
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, out)
			return nil
		},
	})

	return cmd
}
