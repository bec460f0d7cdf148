// Package app sequences the setup steps and maps their outcome to an
// exit code.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/afero"
	"github.com/thenoetrevino/pgsetup/internal/cli"
	"github.com/thenoetrevino/pgsetup/internal/cli/styles"
	"github.com/thenoetrevino/pgsetup/internal/compose"
	"github.com/thenoetrevino/pgsetup/internal/config"
	"github.com/thenoetrevino/pgsetup/internal/database"
	"github.com/thenoetrevino/pgsetup/internal/envfile"
	"github.com/thenoetrevino/pgsetup/internal/prompt"
	"github.com/thenoetrevino/pgsetup/internal/runner"
	"github.com/thenoetrevino/pgsetup/internal/venv"
)

// App holds the collaborators of every command
type App struct {
	cfg         *config.Config
	fs          afero.Fs
	run         runner.Runner
	prompter    prompt.Prompter
	styles      *styles.Styles
	out         io.Writer
	dir         string
	logger      *slog.Logger
	environ     func() []string
	connect     database.Connector
	skipChecks  bool
	interactive bool
}

// New creates an App. Unset collaborators default to the real OS ones.
func New(cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		cfg:     cfg,
		fs:      afero.NewOsFs(),
		run:     runner.New(),
		styles:  styles.Plain(),
		out:     os.Stdout,
		dir:     ".",
		logger:  slog.Default(),
		environ: os.Environ,
		connect: database.PgxConnector,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.prompter == nil {
		a.prompter = prompt.NewLine(os.Stdin, a.out, a.styles)
	}
	return a
}

func (a *App) println(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}

func (a *App) store() *envfile.Store {
	return envfile.NewStore(a.fs, a.dir).WithFilename(a.cfg.Compose.EnvFile)
}

func (a *App) venvManager(name string) *venv.Manager {
	dir := name
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(a.dir, dir)
	}
	return venv.New(a.fs, a.run, a.cfg.Python, dir, venv.WithLogger(a.logger))
}

// exitCode maps a prompt error to 130 and anything else to 1
func exitCode(err error) int {
	if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
		return cli.ExitInterrupted
	}
	return cli.ExitError
}

// Setup runs the whole interactive flow
func (a *App) Setup(ctx context.Context) int {
	a.welcome()

	if !a.skipChecks {
		if code := a.Doctor(ctx); code != cli.ExitSuccess {
			a.println(a.styles.Alert("❌ Missing prerequisites, install them or rerun with --skip-checks."))
			return code
		}
		a.println("")
	}

	name, err := prompt.VenvName(ctx, a.prompter, a.cfg.Venv)
	if err != nil {
		return exitCode(err)
	}
	env := a.venvManager(name)

	if err := a.setupVenv(ctx, env, name); err != nil {
		a.logger.Error("venv setup failed", "venv", name, "error", err)
		a.println(a.styles.Alert(fmt.Sprintf("❌ Failed to create venv: %v", err)))
		a.println(a.styles.Alert("❌ Failed to setup virtual environment, please try running again or manually create."))
		return exitCode(err)
	}

	if err := a.installDependencies(ctx, env); err != nil {
		a.logger.Error("dependency install failed", "error", err)
		a.println(a.styles.Alert(fmt.Sprintf("❌ %v", err)))
		a.println(a.styles.Alert("❌ Failed to install dependencies"))
		return exitCode(err)
	}
	a.println(a.styles.Success("✅ Python environment setup complete!"))

	a.verifyImports(ctx, env)

	values, err := prompt.EnvInputs(ctx, a.prompter, a.cfg.Defaults, a.styles)
	if err != nil {
		return exitCode(err)
	}
	content := envfile.Render(values)

	a.println(a.styles.Info("Preparing .env file with the following inputs:"))
	a.println(content)

	if err := a.writeEnv(ctx, content); err != nil {
		a.logger.Error("writing .env failed", "error", err)
		a.println(a.styles.Alert(fmt.Sprintf("❌ Error creating .env file: %v", err)))
		return exitCode(err)
	}

	loaded, err := a.loadEnv()
	if err != nil {
		return cli.ExitError
	}

	if code := a.up(ctx, loaded, env); code != cli.ExitSuccess {
		return code
	}

	a.println(a.styles.Success("Exiting setup script. You can now connect to your PostgreSQL database using the provided credentials."))
	return cli.ExitSuccess
}

func (a *App) setupVenv(ctx context.Context, env *venv.Manager, name string) error {
	if env.Exists() {
		a.println(a.styles.Success(fmt.Sprintf("✅ Virtual environment '%s' already exists", name)))
		return nil
	}

	a.println(fmt.Sprintf("🔧 Creating virtual environment '%s'...", name))
	var created bool
	err := a.spin(ctx, fmt.Sprintf("Creating virtual environment '%s'...", name), func() error {
		var err error
		created, err = env.Setup(ctx)
		return err
	})
	if err != nil {
		return err
	}
	if created {
		a.println(a.styles.Success(fmt.Sprintf("✅ Virtual environment '%s' created successfully!", name)))
	}
	return nil
}

func (a *App) installDependencies(ctx context.Context, env *venv.Manager) error {
	for _, dep := range a.cfg.Dependencies {
		a.println(fmt.Sprintf("📦 Installing %s...", dep.Package))
		err := a.spin(ctx, fmt.Sprintf("Installing %s...", dep.Package), func() error {
			return env.Install(ctx, []venv.Dependency{dep}, nil)
		})
		if err != nil {
			return err
		}
		a.println(a.styles.Success(fmt.Sprintf("✅ %s installed successfully!", dep.Package)))
	}
	return nil
}

// verifyImports only warns; the flow does not depend on the helpers
func (a *App) verifyImports(ctx context.Context, env *venv.Manager) {
	for _, dep := range a.cfg.Dependencies {
		if err := env.VerifyImport(ctx, dep.Import); err != nil {
			a.logger.Warn("import check failed", "module", dep.Import, "error", err)
			a.println(a.styles.Alert(fmt.Sprintf("❌ Could not import %s, continuing: %v", dep.Import, err)))
			continue
		}
		a.println(a.styles.Success(fmt.Sprintf("✅ %s imported successfully!", dep.Import)))
	}
}

func (a *App) writeEnv(ctx context.Context, content string) error {
	store := a.store()
	path := store.Path()

	exists, err := store.Exists()
	if err != nil {
		return err
	}
	if !exists {
		a.println(a.styles.Success(fmt.Sprintf("✅ .env file does not exist, creating at %s", path)))
	}

	confirm := func(path string) (bool, error) {
		a.println(a.styles.Alert(fmt.Sprintf("❗ .env file already exists at %s, skipping creation.", path)))
		ok, err := a.prompter.Confirm(ctx, prompt.OverwriteQuestion, false)
		if err != nil {
			return false, err
		}
		if ok {
			a.println(a.styles.Alert("Will overwrite"))
		}
		return ok, nil
	}

	written, err := store.Write(content, confirm)
	if err != nil {
		return err
	}
	if written {
		a.println(a.styles.Success(fmt.Sprintf("✅ .env file created at %s", path)))
	} else {
		a.println(a.styles.Success("Will not overwrite, proceeding without creating .env file."))
	}
	return nil
}

func (a *App) loadEnv() (envfile.Values, error) {
	values, err := a.store().Load()
	if err != nil {
		a.logger.Error("loading .env failed", "error", err)
		a.println(a.styles.Alert(fmt.Sprintf("❌ %v", err)))
		a.println(a.styles.Alert("❌ Failed to load environment variables from .env file."))
		return envfile.Values{}, err
	}

	a.println(a.styles.Success("✅ Environment variables loaded successfully!"))
	a.println(a.styles.Info("Environment variables:"))
	for _, key := range envfile.Keys {
		value, _ := values.Get(key)
		a.println(fmt.Sprintf("%s: %s", key, value))
	}
	return values, nil
}

// up starts the containers, waits for Postgres and lists containers.
// env may be nil when no venv is in use.
func (a *App) up(ctx context.Context, values envfile.Values, env *venv.Manager) int {
	client, err := a.composeClient(values.Environ(), env)
	if err != nil {
		a.println(a.styles.Alert(fmt.Sprintf("❌ %v", err)))
		return cli.ExitError
	}

	a.println(a.styles.Info("Starting Docker container..."))
	err = a.spin(ctx, "Starting Docker container...", func() error {
		_, err := client.Up(ctx)
		return err
	})
	if err != nil {
		a.logger.Error("compose up failed", "error", err)
		a.println(a.styles.Alert(fmt.Sprintf("❌ Failed to start Docker container: %v", err)))
		return exitCode(err)
	}
	a.println(a.styles.Success("✅ Docker container started successfully!"))

	a.waitForPostgres(ctx, a.shellOverrides(values))

	return a.ps(ctx, client)
}

// shellOverrides returns values with every key the process environment
// already sets taken from the environment, which is what compose sees
// after mergeEnv
func (a *App) shellOverrides(values envfile.Values) envfile.Values {
	m := values.Map()
	for _, kv := range a.environ() {
		key, value, _ := strings.Cut(kv, "=")
		if _, ok := m[key]; ok {
			m[key] = value
		}
	}
	return envfile.FromMap(m)
}

// composeClient runs docker with extra added to the process environment
func (a *App) composeClient(extra []string, env *venv.Manager) (*compose.Client, error) {
	base := mergeEnv(a.environ(), extra)
	if env != nil {
		base = env.Env(base)
	}
	return compose.New(a.run, a.cfg.Compose.Up, a.cfg.Compose.Ps,
		compose.WithDir(a.dir),
		compose.WithEnv(base),
		compose.WithLogger(a.logger),
	)
}

func (a *App) waitForPostgres(ctx context.Context, values envfile.Values) {
	if a.cfg.Wait.Skip {
		return
	}

	probe := database.NewProbe()
	probe.Host = a.cfg.Wait.Host
	probe.Attempts = a.cfg.Wait.Attempts
	probe.Interval = a.cfg.Wait.Interval
	probe.Connect = a.connect
	probe.Logger = a.logger

	var attempts int
	err := a.spin(ctx, "Waiting for Postgres to accept connections...", func() error {
		var err error
		attempts, err = probe.Wait(ctx, values)
		return err
	})
	if err != nil {
		a.println(a.styles.Alert(fmt.Sprintf("⚠️  %v", err)))
		a.println(a.styles.Alert("The container may still be starting, check it with `docker ps`."))
		return
	}
	a.println(a.styles.Success(fmt.Sprintf("✅ Postgres is accepting connections on port %s (attempt %d)", values.PostgresPort, attempts)))
}

// ps prints the running containers. A failing ps is only a warning.
func (a *App) ps(ctx context.Context, client *compose.Client) int {
	a.println(a.styles.Info("Running Docker containers:"))
	out, err := client.Ps(ctx)
	if out = strings.TrimRight(out, "\n"); out != "" {
		a.println(out)
	}
	if err != nil {
		a.logger.Warn("docker ps failed", "error", err)
		a.println(a.styles.Alert(fmt.Sprintf("⚠️  %v", err)))
	}
	return cli.ExitSuccess
}

// spin runs fn behind a spinner on a terminal, or directly otherwise
func (a *App) spin(ctx context.Context, title string, fn func() error) error {
	if !a.interactive {
		return fn()
	}
	var err error
	if serr := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() { err = fn() }).
		Run(); serr != nil {
		return serr
	}
	return err
}

// mergeEnv adds extra to base. Keys already set in base win.
func mergeEnv(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		seen[key] = true
	}
	out := append([]string(nil), base...)
	for _, kv := range extra {
		key, _, _ := strings.Cut(kv, "=")
		if !seen[key] {
			out = append(out, kv)
			seen[key] = true
		}
	}
	return out
}
