package app

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/thenoetrevino/pgsetup/internal/cli/styles"
	"github.com/thenoetrevino/pgsetup/internal/database"
	"github.com/thenoetrevino/pgsetup/internal/prompt"
	"github.com/thenoetrevino/pgsetup/internal/runner"
)

// Option is a functional option for configuring App initialization
type Option func(*App)

// WithFs sets the file system used for the venv and .env file
func WithFs(fsys afero.Fs) Option {
	return func(a *App) {
		a.fs = fsys
	}
}

// WithRunner sets the subprocess runner
func WithRunner(run runner.Runner) Option {
	return func(a *App) {
		a.run = run
	}
}

// WithPrompter sets where answers come from
func WithPrompter(p prompt.Prompter) Option {
	return func(a *App) {
		a.prompter = p
	}
}

// WithStyles sets the console styles
func WithStyles(st *styles.Styles) Option {
	return func(a *App) {
		a.styles = st
	}
}

// WithOutput sets the console writer
func WithOutput(out io.Writer) Option {
	return func(a *App) {
		a.out = out
	}
}

// WithDir sets the working directory holding .env and the compose file
func WithDir(dir string) Option {
	return func(a *App) {
		a.dir = dir
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithEnviron sets the base process environment for child processes
func WithEnviron(environ func() []string) Option {
	return func(a *App) {
		a.environ = environ
	}
}

// WithConnector sets how the readiness probe connects to Postgres
func WithConnector(connect database.Connector) Option {
	return func(a *App) {
		a.connect = connect
	}
}

// WithSkipChecks disables the prerequisite checks before setup
func WithSkipChecks(skip bool) Option {
	return func(a *App) {
		a.skipChecks = skip
	}
}

// WithInteractive enables spinners for long running steps
func WithInteractive(interactive bool) Option {
	return func(a *App) {
		a.interactive = interactive
	}
}
