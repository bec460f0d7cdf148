// Package logging writes diagnostic logs to a file so they never mix
// with the interactive console output.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the global slog instance for the application
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const fileName = "pgsetup.log"

// ErrInvalidLevel is returned for a level name charm log does not know
var ErrInvalidLevel = errors.New("invalid log level")

// Dir returns the log directory: $XDG_STATE_HOME/pgsetup, falling back
// to ~/.pgsetup/logs
func Dir() (string, error) {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "pgsetup"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".pgsetup", "logs"), nil
}

// ParseLevel maps a level name to a charm log level. Empty means info.
func ParseLevel(level string) (charmlog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return charmlog.InfoLevel, nil
	}
	lvl, err := charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return charmlog.InfoLevel, fmt.Errorf("%w %q: %w", ErrInvalidLevel, level, err)
	}
	return lvl, nil
}

// New builds a slog logger backed by a charm log handler writing to w
func New(w io.Writer, level charmlog.Level) *slog.Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           level,
		Prefix:          "pgsetup",
		Formatter:       charmlog.LogfmtFormatter,
	})
	return slog.New(handler)
}

// Init opens the log file in append mode and installs the logger as
// the slog default. The returned file must be closed by the caller.
func Init(level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logDir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(logDir, fileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	Logger = New(file, lvl)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}
