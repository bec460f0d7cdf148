package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/pgsetup/internal/cli/styles"
	"github.com/thenoetrevino/pgsetup/internal/envfile"
)

// Line reads one answer per line. It is used when stdin is not a
// terminal, so answers can be piped in.
type Line struct {
	in     *bufio.Reader
	out    io.Writer
	styles *styles.Styles
}

// NewLine creates a line prompter reading from in and echoing questions to out
func NewLine(in io.Reader, out io.Writer, st *styles.Styles) *Line {
	if st == nil {
		st = styles.Plain()
	}
	return &Line{in: bufio.NewReader(in), out: out, styles: st}
}

// Ask prints "question (default) : " and reads a line
func (l *Line) Ask(ctx context.Context, question, def string) (string, error) {
	if _, err := fmt.Fprintf(l.out, "%s %s : ", question, l.styles.Default(def)); err != nil {
		return "", err
	}
	answer, err := l.readLine(ctx)
	if err != nil {
		return "", err
	}
	return answerOr(answer, def), nil
}

// Confirm prints the question with a y/n default and reads a line
func (l *Line) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	hint := "n"
	if def {
		hint = "y"
	}
	if _, err := fmt.Fprintf(l.out, "%s %s ", l.styles.Alert(question), l.styles.Default(hint)); err != nil {
		return false, err
	}
	answer, err := l.readLine(ctx)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(answer) == "" {
		return def, nil
	}
	return envfile.IsAffirmative(answer), nil
}

// readLine returns the next line without its terminator. EOF with a
// partial line returns that line; EOF on an empty read takes the default.
func (l *Line) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAborted, err)
	}
	line, err := l.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// keep the prompt and the next output on separate lines
		_, _ = fmt.Fprintln(l.out)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
