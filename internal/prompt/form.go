package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/pgsetup/internal/config/colors"
)

// Form asks each question as a single-field huh form
type Form struct {
	theme      *huh.Theme
	accessible bool
}

// NewForm creates a huh-backed prompter themed from the color scheme
func NewForm(scheme colors.ColorScheme, accessible bool) *Form {
	return &Form{theme: Theme(scheme), accessible: accessible}
}

// Ask shows an input with the default as placeholder
func (f *Form) Ask(ctx context.Context, question, def string) (string, error) {
	var answer string
	input := huh.NewInput().
		Title(question).
		Description(fmt.Sprintf("Press enter for %q", def)).
		Placeholder(def).
		Value(&answer)

	if err := f.run(ctx, input); err != nil {
		return "", err
	}
	return answerOr(answer, def), nil
}

// Confirm shows a yes/no toggle starting at def
func (f *Form) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	answer := def
	confirm := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)

	if err := f.run(ctx, confirm); err != nil {
		return false, err
	}
	return answer, nil
}

func (f *Form) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(f.theme).
		WithAccessible(f.accessible).
		WithShowHelp(false)

	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}
	return err
}

// Theme creates a huh theme matching the color scheme
func Theme(scheme colors.ColorScheme) *huh.Theme {
	scheme.ApplyDefaults()
	t := huh.ThemeBase()

	accent := lipgloss.Color(scheme.Accent)
	success := lipgloss.Color(scheme.Success)
	subtle := lipgloss.Color(scheme.Subtle)
	normal := lipgloss.Color(scheme.Normal)
	alert := lipgloss.Color(scheme.Alert)
	title := lipgloss.Color(scheme.Title)
	def := lipgloss.Color(scheme.Default)

	// Focused field styles
	t.Focused.Base = t.Focused.Base.BorderForeground(accent)
	t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(subtle)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(alert)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(alert)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(success)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(success)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(normal)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(subtle)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(accent).
		Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(normal).
		Background(subtle)

	// TextInput styles
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(def)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)

	// Blurred field styles (inherit from focused but with hidden border)
	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

	return t
}
