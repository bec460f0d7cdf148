// Package prompt asks the user for setup values, either through huh
// forms on a terminal or line by line when stdin is piped.
package prompt

import (
	"context"
	"errors"
	"strings"
)

// ErrAborted indicates the user cancelled a prompt
var ErrAborted = errors.New("prompt aborted")

// Prompter asks questions and returns trimmed answers. An empty answer
// takes the default.
type Prompter interface {
	Ask(ctx context.Context, question, def string) (string, error)
	Confirm(ctx context.Context, question string, def bool) (bool, error)
}

func answerOr(answer, def string) string {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def
	}
	return answer
}
