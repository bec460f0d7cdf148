package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Fake is a scripted Runner for tests. Responses are matched by the
// command line prefix; the first matching entry wins.
type Fake struct {
	mu        sync.Mutex
	responses []fakeResponse
	missing   map[string]bool
	Calls     []Command
}

type fakeResponse struct {
	prefix string
	result Result
	err    error
}

// NewFake returns an empty Fake whose unmatched commands succeed
func NewFake() *Fake {
	return &Fake{missing: make(map[string]bool)}
}

// On registers the result for any command line starting with prefix
func (f *Fake) On(prefix string, result Result, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, fakeResponse{prefix: prefix, result: result, err: err})
	return f
}

// Missing marks an executable as absent from PATH
func (f *Fake) Missing(name string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.missing[name] = true
	return f
}

func (f *Fake) Run(_ context.Context, c Command) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, c)

	line := c.String()
	for _, r := range f.responses {
		if strings.HasPrefix(line, r.prefix) {
			return r.result, r.err
		}
	}
	return Result{}, nil
}

func (f *Fake) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missing[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

// CommandLines returns every recorded call rendered as a string
func (f *Fake) CommandLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.String())
	}
	return lines
}
