// Package compose brings the database containers up through the Docker
// CLI.
package compose

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/pgsetup/internal/runner"
)

// Default command lines
const (
	DefaultUpCommand = "docker compose up -d --build"
	DefaultPsCommand = "docker ps"
)

var (
	// ErrDockerNotFound indicates the docker executable is not on PATH
	ErrDockerNotFound = errors.New("docker executable not found")

	// ErrComposeFailed indicates the compose command exited non-zero
	ErrComposeFailed = errors.New("failed to start Docker containers")

	// ErrPsFailed indicates the listing command exited non-zero
	ErrPsFailed = errors.New("failed to list Docker containers")
)

// Client runs the configured compose and ps commands
type Client struct {
	run    runner.Runner
	up     runner.Command
	ps     runner.Command
	dir    string
	env    []string
	logger *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithDir sets the working directory, where compose finds its files
func WithDir(dir string) Option {
	return func(c *Client) {
		c.dir = dir
	}
}

// WithEnv sets the environment of both commands
func WithEnv(env []string) Option {
	return func(c *Client) {
		c.env = env
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New parses the up and ps command lines. Empty lines select the
// defaults.
func New(run runner.Runner, upLine, psLine string, opts ...Option) (*Client, error) {
	if upLine == "" {
		upLine = DefaultUpCommand
	}
	if psLine == "" {
		psLine = DefaultPsCommand
	}

	up, err := runner.Split(upLine)
	if err != nil {
		return nil, fmt.Errorf("invalid up command: %w", err)
	}
	ps, err := runner.Split(psLine)
	if err != nil {
		return nil, fmt.Errorf("invalid ps command: %w", err)
	}

	c := &Client{run: run, up: up, ps: ps, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) command(base runner.Command) runner.Command {
	base.Dir = c.dir
	base.Env = c.env
	return base
}

func (c *Client) checkExecutable(name string) error {
	if _, err := c.run.LookPath(name); err != nil {
		return fmt.Errorf("%w: %s", ErrDockerNotFound, name)
	}
	return nil
}

// Up builds and starts the containers in the background
func (c *Client) Up(ctx context.Context) (runner.Result, error) {
	if err := c.checkExecutable(c.up.Name); err != nil {
		return runner.Result{}, err
	}

	cmd := c.command(c.up)
	c.logger.Info("starting containers", "command", cmd.String(), "dir", cmd.Dir)

	res, err := c.run.Run(ctx, cmd)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrComposeFailed, err)
	}
	if !res.Success() {
		c.logger.Error("compose failed", "exit_code", res.ExitCode, "stderr", res.Stderr)
		return res, fmt.Errorf("%w: %s", ErrComposeFailed, res.Output())
	}
	return res, nil
}

// Ps lists running containers and returns the command's stdout
func (c *Client) Ps(ctx context.Context) (string, error) {
	if err := c.checkExecutable(c.ps.Name); err != nil {
		return "", err
	}

	res, err := c.run.Run(ctx, c.command(c.ps))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPsFailed, err)
	}
	if !res.Success() {
		return res.Stdout, fmt.Errorf("%w: %s", ErrPsFailed, res.Output())
	}
	return res.Stdout, nil
}
