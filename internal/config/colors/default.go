package colors

// Default returns the default color scheme, close to the terminal's
// bold green/red/blue/magenta
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Roles
		Success: "#5FD75F",
		Alert:   "#FF5F5F",
		Info:    "#5F87FF",
		Default: "#D75FD7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
