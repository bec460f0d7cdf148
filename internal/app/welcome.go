package app

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/pgsetup/internal/cli/styles"
)

const welcomeMarkdown = `# Welcome to the Postgres DB interactive setup

Based on the inputs provided, this will create a ` + "`.env`" + ` file for your DB instance,
start the Docker container, and display the running containers for reference.

Please note you will need **Python**, **Docker**, and **Docker Compose** installed
before running this.

For each input the default will be listed in parentheses, hitting enter without
providing an input will use those inputs.
`

// renderWelcome renders the banner, falling back to the raw markdown
func renderWelcome(color bool) string {
	style := glamour.WithStandardStyle("notty")
	if color {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(styles.WrapWidth))
	if err != nil {
		return welcomeMarkdown
	}
	out, err := r.Render(welcomeMarkdown)
	if err != nil {
		return welcomeMarkdown
	}
	return strings.TrimRight(out, "\n")
}

func (a *App) welcome() {
	a.println(renderWelcome(a.styles.Enabled))
	a.println("")
}
