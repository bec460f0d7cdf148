// Package preflight verifies the tools the setup flow shells out to.
package preflight

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/thenoetrevino/pgsetup/internal/cli/styles"
	"github.com/thenoetrevino/pgsetup/internal/runner"
)

const rule = "======================================"

type CheckResult struct {
	Name    string
	Passed  bool
	Output  string
	Message string
}

// Check is one prerequisite: a command that must exit zero
type Check struct {
	Name    string
	Command runner.Command
	Hint    string
}

// DefaultChecks returns the python, docker and compose checks
func DefaultChecks(python string) []Check {
	return []Check{
		{
			Name:    "Python",
			Command: runner.Command{Name: python, Args: []string{"--version"}},
			Hint:    "install Python 3 or set python in the config file",
		},
		{
			Name:    "Docker",
			Command: runner.Command{Name: "docker", Args: []string{"--version"}},
			Hint:    "install Docker: https://docs.docker.com/get-docker/",
		},
		{
			Name:    "Docker Compose",
			Command: runner.Command{Name: "docker", Args: []string{"compose", "version"}},
			Hint:    "install the Docker Compose plugin: https://docs.docker.com/compose/install/",
		},
	}
}

type Checker struct {
	run     runner.Runner
	checks  []Check
	out     io.Writer
	styles  *styles.Styles
	results []CheckResult
	mu      sync.Mutex
}

func NewChecker(run runner.Runner, checks []Check, out io.Writer, st *styles.Styles) *Checker {
	if st == nil {
		st = styles.Plain()
	}
	return &Checker{
		run:     run,
		checks:  checks,
		out:     out,
		styles:  st,
		results: make([]CheckResult, len(checks)),
	}
}

func (c *Checker) setResult(i int, result CheckResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[i] = result
}

// Results returns the outcome of every check in declaration order
func (c *Checker) Results() []CheckResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CheckResult, len(c.results))
	copy(out, c.results)
	return out
}

// Run executes all checks concurrently, prints a summary and returns
// the exit code: 0 when every check passed, 1 otherwise.
func (c *Checker) Run(ctx context.Context) int {
	fmt.Fprintln(c.out, c.styles.Title(rule))
	fmt.Fprintln(c.out, c.styles.Title("     Checking prerequisites"))
	fmt.Fprintln(c.out, c.styles.Title(rule))
	fmt.Fprintln(c.out)

	var wg sync.WaitGroup
	for i, check := range c.checks {
		wg.Add(1)
		go func(i int, check Check) {
			defer wg.Done()
			c.setResult(i, c.runCheck(ctx, check))
		}(i, check)
	}
	wg.Wait()

	return c.printSummary()
}

func (c *Checker) runCheck(ctx context.Context, check Check) CheckResult {
	if _, err := c.run.LookPath(check.Command.Name); err != nil {
		return CheckResult{
			Name:    check.Name,
			Passed:  false,
			Message: fmt.Sprintf("%s not found (%s)", check.Command.Name, check.Hint),
		}
	}

	res, err := c.run.Run(ctx, check.Command)
	if err != nil {
		return CheckResult{
			Name:    check.Name,
			Passed:  false,
			Output:  err.Error(),
			Message: fmt.Sprintf("Failed to run %s", check.Command),
		}
	}
	if !res.Success() {
		return CheckResult{
			Name:    check.Name,
			Passed:  false,
			Output:  res.Output(),
			Message: fmt.Sprintf("%s exited with %d (%s)", check.Command, res.ExitCode, check.Hint),
		}
	}

	return CheckResult{
		Name:    check.Name,
		Passed:  true,
		Message: firstLine(res.Output()),
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

func (c *Checker) printSummary() int {
	results := c.Results()

	var passed, failed []CheckResult
	for _, result := range results {
		if result.Passed {
			passed = append(passed, result)
		} else {
			failed = append(failed, result)
		}
	}

	for _, result := range passed {
		line := "PASS  " + result.Name
		if result.Message != "" {
			line += " - " + result.Message
		}
		fmt.Fprintln(c.out, c.styles.Success(line))
	}

	for _, result := range failed {
		line := "FAIL  " + result.Name
		if result.Message != "" {
			line += " - " + result.Message
		}
		fmt.Fprintln(c.out, c.styles.Alert(line))
		if result.Output != "" {
			fmt.Fprintln(c.out, result.Output)
		}
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Title(rule))
	if len(failed) == 0 {
		fmt.Fprintln(c.out, c.styles.Success("All prerequisites found"))
	} else {
		fmt.Fprintln(c.out, c.styles.Alert(fmt.Sprintf("Failed: %d/%d checks", len(failed), len(results))))
	}
	fmt.Fprintln(c.out, c.styles.Title(rule))

	if len(failed) > 0 {
		return 1
	}
	return 0
}
