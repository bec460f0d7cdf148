// Package styles renders console messages in the configured colors.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/pgsetup/internal/config/colors"
)

// WrapWidth is the column rendered markdown wraps at
const WrapWidth = 80

// Styles holds the rendered roles for one color scheme. With color
// disabled every role falls back to a plain text prefix.
type Styles struct {
	Enabled bool

	SuccessStyle lipgloss.Style
	AlertStyle   lipgloss.Style
	InfoStyle    lipgloss.Style
	DefaultStyle lipgloss.Style
	TitleStyle   lipgloss.Style
}

// New builds styles for the scheme
func New(scheme colors.ColorScheme, enabled bool) *Styles {
	scheme.ApplyDefaults()

	return &Styles{
		Enabled: enabled,

		SuccessStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Success)),

		AlertStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Alert)),

		InfoStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Info)),

		DefaultStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Default)),

		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),
	}
}

// Plain returns styles that never emit escape codes
func Plain() *Styles {
	return New(*colors.Monochrome(), false)
}

// Success renders a completed step
func (s *Styles) Success(text string) string {
	if !s.Enabled {
		return "✅ " + text
	}
	return s.SuccessStyle.Render(text)
}

// Alert renders a failure or warning
func (s *Styles) Alert(text string) string {
	if !s.Enabled {
		return "⚠️  " + text
	}
	return s.AlertStyle.Render(text)
}

// Info renders a section header or user-supplied value
func (s *Styles) Info(text string) string {
	if !s.Enabled {
		return "ℹ️  " + text
	}
	return s.InfoStyle.Render(text)
}

// Default renders the default answer shown next to a prompt
func (s *Styles) Default(text string) string {
	if !s.Enabled {
		return "(" + text + ")"
	}
	return s.DefaultStyle.Render("(" + text + ")")
}

// Title renders a heading
func (s *Styles) Title(text string) string {
	if !s.Enabled {
		return text
	}
	return s.TitleStyle.Render(text)
}
