package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/pgsetup/internal/app"
	"github.com/thenoetrevino/pgsetup/internal/cli"
	"github.com/thenoetrevino/pgsetup/internal/cli/styles"
	"github.com/thenoetrevino/pgsetup/internal/config"
	"github.com/thenoetrevino/pgsetup/internal/logging"
	"github.com/thenoetrevino/pgsetup/internal/prompt"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	dir        string
	logLevel   string
	noColor    bool
	skipChecks bool

	logFile io.Closer
}

// NewRootCmd builds the pgsetup command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pgsetup",
		Short: "pgsetup - interactive PostgreSQL + pgAdmin setup",
		Long: `pgsetup prepares a local PostgreSQL and pgAdmin environment.

It creates or reuses a Python virtual environment, installs the helper
packages, asks for the database settings, writes them to .env and starts
the containers with Docker Compose.

Examples:
  # Interactive setup in the current directory
  pgsetup

  # Setup in another project, without the prerequisite checks
  pgsetup --dir ../api --skip-checks

  # Answers can be piped in, one per line
  printf 'venv\nadmin\n' | pgsetup
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.close()
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return exit(a.Setup(cmd.Context()))
		},
	}

	opts.addPersistentFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().BoolVar(&opts.skipChecks, "skip-checks", false, "Skip the python/docker prerequisite checks")

	rootCmd.AddCommand(
		envCmd(opts),
		upCmd(opts),
		psCmd(opts),
		doctorCmd(opts),
		configCmd(),
	)

	return rootCmd
}

func (o *rootOptions) addPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.dir, "dir", "", "Working directory holding .env and the compose file (default: current directory)")
	flags.StringVar(&o.logLevel, "log-level", "info", "Log level for the log file (debug, info, warn, error)")
	flags.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
}

// newApp loads the config, starts file logging and wires the app for
// the current terminal
func (o *rootOptions) newApp(cmd *cobra.Command) (*app.App, error) {
	if o.logFile == nil {
		closer, err := logging.Init(o.logLevel)
		if err != nil {
			code := cli.ExitError
			if errors.Is(err, logging.ErrInvalidLevel) {
				code = cli.ExitUsage
			}
			return nil, cli.WithExitCode(code, fmt.Errorf("failed to initialize logging: %w", err))
		}
		o.logFile = closer
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, cli.WithExitCode(cli.ExitError, fmt.Errorf("failed to load configuration: %w", err))
	}

	dir := o.dir
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	out := cmd.OutOrStdout()
	st := styles.New(cfg.ColorScheme, cli.ShouldUseColor(o.noColor))

	interactive := cli.IsInteractive()
	var p prompt.Prompter
	if interactive {
		p = prompt.NewForm(cfg.ColorScheme, os.Getenv("ACCESSIBLE") != "")
	} else {
		p = prompt.NewLine(cmd.InOrStdin(), out, st)
	}

	logging.Logger.Debug("starting", "command", cmd.Name(), "dir", dir, "interactive", interactive)

	return app.New(cfg,
		app.WithDir(dir),
		app.WithOutput(out),
		app.WithStyles(st),
		app.WithPrompter(p),
		app.WithLogger(logging.Logger),
		app.WithSkipChecks(o.skipChecks),
		app.WithInteractive(interactive),
	), nil
}

func (o *rootOptions) close() {
	if o.logFile != nil {
		_ = o.logFile.Close()
		o.logFile = nil
	}
}

// exit turns a non-zero exit code into an error for cobra
func exit(code int) error {
	if code == cli.ExitSuccess {
		return nil
	}
	return cli.WithExitCode(code, nil)
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return run(ctx, NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(ctx context.Context, rootCmd *cobra.Command, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var coded *cli.ExitCodeError
	if errors.As(err, &coded) {
		if coded.Err != nil {
			fmt.Fprintf(stderr, "❌ Error: %v\n", coded.Err)
		}
		return coded.Code
	}

	fmt.Fprintf(stderr, "❌ Error: %v\n", err)
	return cli.ExitUsage
}
