package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pgsetup/internal/cli"
	"github.com/thenoetrevino/pgsetup/internal/config"
	"gopkg.in/yaml.v3"
)

func envCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the values stored in .env",
		Long: `Print the eight connection values stored in .env.

Examples:
  pgsetup env
  pgsetup env --json
`,
		Args: cobra.NoArgs,
	}

	jsonOut := cmd.Flags().Bool("json", false, "Output in JSON format")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer opts.close()
		a, err := opts.newApp(cmd)
		if err != nil {
			return err
		}
		formatter := &cli.OutputFormatter{
			JSON: *jsonOut,
			Out:  cmd.OutOrStdout(),
			Err:  cmd.ErrOrStderr(),
		}
		return exit(a.Env(cmd.Context(), formatter))
	}
	return cmd
}

func upCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Start the containers from an existing .env",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.close()
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return exit(a.Up(cmd.Context()))
		},
	}
}

func psCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ps",
		Short: "List the running containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.close()
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return exit(a.Ps(cmd.Context()))
		},
	}
}

func doctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that Python, Docker and Docker Compose are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.close()
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return exit(a.Doctor(cmd.Context()))
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.Path()
				if err != nil {
					return cli.WithExitCode(cli.ExitError, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return cli.WithExitCode(cli.ExitError, err)
				}
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return cli.WithExitCode(cli.ExitError, err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		initConfigCmd(),
	)
	return cmd
}

func initConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
	}

	force := cmd.Flags().Bool("force", false, "Overwrite an existing configuration file")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return cli.WithExitCode(cli.ExitError, err)
		}
		if _, err := os.Stat(path); err == nil && !*force {
			return cli.WithExitCode(cli.ExitError, fmt.Errorf("%s already exists, use --force to overwrite", path))
		}
		if err := config.Default().Save(); err != nil {
			return cli.WithExitCode(cli.ExitError, fmt.Errorf("failed to save configuration: %w", err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s\n", path)
		return nil
	}
	return cmd
}
