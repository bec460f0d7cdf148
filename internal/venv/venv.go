// Package venv creates and drives a Python virtual environment through
// its own python and pip executables.
package venv

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/thenoetrevino/pgsetup/internal/runner"
)

// DefaultName is the venv directory used when the user gives none
const DefaultName = "venv"

// Dependency is a pip package and the module name used to import it
type Dependency struct {
	Package string `yaml:"package"`
	Import  string `yaml:"import"`
}

// DefaultDependencies are the helper packages installed into the venv
func DefaultDependencies() []Dependency {
	return []Dependency{
		{Package: "simple_chalk", Import: "simple_chalk"},
		{Package: "python-dotenv", Import: "dotenv"},
	}
}

// Manager operates on a single virtual environment directory
type Manager struct {
	fs     afero.Fs
	run    runner.Runner
	python string
	dir    string
	paths  Paths
	logger *slog.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithPaths overrides the OS-specific executable layout
func WithPaths(p Paths) Option {
	return func(m *Manager) {
		m.paths = p
	}
}

// New returns a Manager for the venv at dir, created with the python
// interpreter named by python
func New(fsys afero.Fs, run runner.Runner, python, dir string, opts ...Option) *Manager {
	if dir == "" {
		dir = DefaultName
	}
	m := &Manager{
		fs:     fsys,
		run:    run,
		python: python,
		dir:    dir,
		paths:  PathsFor(dir),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the venv directory
func (m *Manager) Dir() string {
	return m.dir
}

// Paths returns the executable locations inside the venv
func (m *Manager) Paths() Paths {
	return m.paths
}

// Exists reports whether dir already holds a virtual environment
func (m *Manager) Exists() bool {
	ok, err := afero.Exists(m.fs, filepath.Join(m.dir, "pyvenv.cfg"))
	return err == nil && ok
}

// Setup reuses the venv when present, otherwise creates it. The bool
// reports whether a new venv was created.
func (m *Manager) Setup(ctx context.Context) (bool, error) {
	if m.Exists() {
		m.logger.Debug("reusing virtual environment", "dir", m.dir)
		return false, nil
	}

	m.logger.Info("creating virtual environment", "dir", m.dir, "python", m.python)
	res, err := m.run.Run(ctx, runner.Command{
		Name: m.python,
		Args: []string{"-m", "venv", m.dir},
	})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	if !res.Success() {
		return false, fmt.Errorf("%w: %s", ErrCreateFailed, res.Output())
	}
	return true, nil
}

// Env returns base with VIRTUAL_ENV set, the scripts directory first on
// PATH and PYTHONHOME removed
func (m *Manager) Env(base []string) []string {
	dir := m.dir
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	scripts := m.paths.Scripts
	if abs, err := filepath.Abs(scripts); err == nil {
		scripts = abs
	}

	env := make([]string, 0, len(base)+2)
	path := ""
	for _, kv := range base {
		key, value, _ := strings.Cut(kv, "=")
		switch strings.ToUpper(key) {
		case "PYTHONHOME", "VIRTUAL_ENV":
			continue
		case "PATH":
			path = value
			continue
		}
		env = append(env, kv)
	}

	if path != "" {
		path = scripts + string(os.PathListSeparator) + path
	} else {
		path = scripts
	}
	env = append(env, "VIRTUAL_ENV="+dir, "PATH="+path)
	return env
}

// Command rewrites a leading "python" to the venv interpreter and runs
// the command in the venv environment
func (m *Manager) Command(name string, args ...string) runner.Command {
	if name == "python" {
		name = m.paths.Python
	}
	return runner.Command{
		Name: name,
		Args: args,
		Env:  m.Env(os.Environ()),
	}
}

// Install installs each package with the venv pip, stopping at the first
// failure. progress is called before each install when non-nil.
func (m *Manager) Install(ctx context.Context, deps []Dependency, progress func(Dependency)) error {
	if ok, _ := afero.Exists(m.fs, m.paths.Pip); !ok {
		return fmt.Errorf("%w: %s", ErrPipNotFound, m.paths.Pip)
	}

	env := m.Env(os.Environ())
	for _, dep := range deps {
		if progress != nil {
			progress(dep)
		}
		m.logger.Info("installing dependency", "package", dep.Package)

		res, err := m.run.Run(ctx, runner.Command{
			Name: m.paths.Pip,
			Args: []string{"install", dep.Package},
			Env:  env,
		})
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInstallFailed, dep.Package, err)
		}
		if !res.Success() {
			return fmt.Errorf("%w %s: %s", ErrInstallFailed, dep.Package, res.Output())
		}
	}
	return nil
}

// VerifyImport checks that module can be imported by the venv python
func (m *Manager) VerifyImport(ctx context.Context, module string) error {
	if ok, _ := afero.Exists(m.fs, m.paths.Python); !ok {
		return fmt.Errorf("%w: %s", ErrPythonNotFound, m.paths.Python)
	}

	res, err := m.run.Run(ctx, m.Command("python", "-c", "import "+module))
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", module, err)
	}
	if !res.Success() {
		return fmt.Errorf("%s not available in venv: %s", module, res.Output())
	}
	return nil
}
