// Package runner executes external tools and captures their output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/shlex"
)

// ErrEmptyCommand is returned when a command has no executable name
var ErrEmptyCommand = errors.New("empty command")

// Command describes a single process invocation
type Command struct {
	Name string
	Args []string
	// Env replaces the process environment when non-nil
	Env []string
	Dir string
}

// String renders the command line for display and logs
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result holds the outcome of a finished process
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Output returns stderr when present, stdout otherwise
func (r Result) Output() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// Runner runs commands. A non-zero exit status is reported through
// Result.ExitCode; the error is reserved for processes that never ran
// or were stopped by their context.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
	LookPath(name string) (string, error)
}

// waitDelay bounds how long Run waits for output pipes after the
// context kills the process
const waitDelay = 2 * time.Second

// Exec is the os/exec backed Runner
type Exec struct{}

// New returns the default Runner
func New() *Exec {
	return &Exec{}
}

func (e *Exec) Run(ctx context.Context, c Command) (Result, error) {
	if c.Name == "" {
		return Result{}, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Env = c.Env
	cmd.Dir = c.Dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		// a process killed by cancellation also reports an ExitError
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("%s interrupted: %w", c.Name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to run %s: %w", c.Name, err)
	}

	return result, nil
}

func (e *Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Split parses a shell-like command line into a Command without
// involving a shell
func Split(line string) (Command, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return Command{}, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	if len(parts) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{Name: parts[0], Args: parts[1:]}, nil
}
