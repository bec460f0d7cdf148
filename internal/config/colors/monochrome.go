package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Success: "#FFFFFF",
		Alert:   "#FFFFFF",
		Info:    "#D0D0D0",
		Default: "#8A8A8A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
