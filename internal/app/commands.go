package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/pgsetup/internal/cli"
	"github.com/thenoetrevino/pgsetup/internal/envfile"
	"github.com/thenoetrevino/pgsetup/internal/preflight"
)

// Doctor checks that python, docker and docker compose are installed
func (a *App) Doctor(ctx context.Context) int {
	checker := preflight.NewChecker(a.run, preflight.DefaultChecks(a.cfg.Python), a.out, a.styles)
	return checker.Run(ctx)
}

// Up starts the containers from an existing .env file. The configured
// venv is used when it exists.
func (a *App) Up(ctx context.Context) int {
	values, err := a.loadEnv()
	if err != nil {
		return cli.ExitError
	}

	env := a.venvManager(a.cfg.Venv)
	if !env.Exists() {
		a.logger.Debug("no venv found, using process environment", "venv", env.Dir())
		env = nil
	}
	return a.up(ctx, values, env)
}

// Ps lists the running containers
func (a *App) Ps(ctx context.Context) int {
	client, err := a.composeClient(nil, nil)
	if err != nil {
		a.println(a.styles.Alert(fmt.Sprintf("❌ %v", err)))
		return cli.ExitError
	}

	out, err := client.Ps(ctx)
	if err != nil {
		a.println(a.styles.Alert(fmt.Sprintf("❌ %v", err)))
		return cli.ExitError
	}
	_, _ = fmt.Fprint(a.out, out)
	return cli.ExitSuccess
}

// Env prints the values stored in the .env file
func (a *App) Env(_ context.Context, f *cli.OutputFormatter) int {
	if f.Out == nil {
		f.Out = a.out
	}

	values, err := a.store().Load()
	if err != nil {
		if errors.Is(err, envfile.ErrNotFound) {
			_ = f.ErrorWithSuggestion("ENV_NOT_FOUND", err.Error(), "run pgsetup to create it")
		} else {
			_ = f.Error("ENV_INVALID", err.Error())
		}
		return cli.ExitError
	}

	if err := f.Success(values.Map()); err != nil {
		return cli.ExitError
	}
	return cli.ExitSuccess
}
