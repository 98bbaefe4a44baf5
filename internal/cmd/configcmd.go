package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brickops/dbnb/internal/config"
)

func configCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "config",
		Short: "Manage the Databricks host and token configuration.",
	}

	cmd.AddCommand(configCheckCmd())
	cmd.AddCommand(configSetHostCmd())
	cmd.AddCommand(configSetTokenCmd())
	cmd.AddCommand(configTestCmd())

	return &cmd
}

func configCheckCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "check",
		Short: "Show the current configuration status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			path, err := config.Path()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Databricks Configuration Status")
			fmt.Fprintln(out, "========================================")
			fmt.Fprintf(out, ".env file: %s\n\n", path)
			fmt.Fprintln(out, "Variables:")
			host := cfg.Host
			if host == "" {
				host = "(not set)"
			}
			fmt.Fprintf(out, "  %s:  %s\n", config.EnvHost, host)
			fmt.Fprintf(out, "  %s: %s\n\n", config.EnvToken, config.MaskToken(cfg.Token))

			if cfg.Complete() {
				fmt.Fprintln(out, "Status: CONFIGURED")
				return nil
			}

			fmt.Fprintln(out, "Status: INCOMPLETE")
			var missing []string
			if cfg.Host == "" {
				missing = append(missing, config.EnvHost)
			}
			if cfg.Token == "" {
				missing = append(missing, config.EnvToken)
			}
			fmt.Fprintf(out, "Missing: %s\n", strings.Join(missing, ", "))
			return nil
		},
	}
	return &cmd
}

func configSetHostCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "set-host <url>",
		Short: "Set the workspace URL.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set(config.EnvHost, args[0]); err != nil {
				return err
			}
			return writeString(cmd, fmt.Sprintf("Set %s=%s", config.EnvHost, args[0]))
		},
	}
	return &cmd
}

func configSetTokenCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "set-token <token>",
		Short: "Set the personal access token.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set(config.EnvToken, args[0]); err != nil {
				return err
			}
			return writeString(cmd, fmt.Sprintf("Set %s=%s", config.EnvToken, config.MaskToken(args[0])))
		},
	}
	return &cmd
}

func configTestCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "test",
		Short: "Test the connection to the configured workspace.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			user, err := c.Me(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "connection failed")
			}
			return writeString(cmd, fmt.Sprintf("Success! Connected as: %s", user))
		},
	}
	return &cmd
}
