package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal completion, including a declined .env overwrite.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: venv creation, dependency install, .env write/load and
	// Docker Compose failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Unknown flags or arguments.
	ExitUsage = 2

	// ExitInterrupted indicates the user aborted a prompt or sent SIGINT.
	ExitInterrupted = 130
)

// ExitCodeError carries an exit code through cobra's error return
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so the caller exits with code
func WithExitCode(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}
