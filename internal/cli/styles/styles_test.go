package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/pgsetup/internal/config/colors"
)

func TestPlainFallbacks(t *testing.T) {
	s := Plain()

	assert.Equal(t, "✅ done", s.Success("done"))
	assert.Equal(t, "⚠️  careful", s.Alert("careful"))
	assert.Equal(t, "ℹ️  note", s.Info("note"))
	assert.Equal(t, "(admin)", s.Default("admin"))
	assert.Equal(t, "Heading", s.Title("Heading"))
}

func TestColoredKeepsText(t *testing.T) {
	s := New(*colors.Default(), true)

	assert.Contains(t, s.Success("done"), "done")
	assert.Contains(t, s.Alert("careful"), "careful")
	assert.Contains(t, s.Info("note"), "note")
	assert.Contains(t, s.Default("admin"), "(admin)")
	assert.NotContains(t, s.Success("done"), "✅")
}
