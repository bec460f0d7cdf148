package colors

// Kanagawa palette entries used by the presets below
const (
	dragonGreen2 = "#8A9A7B"
	dragonRed    = "#C4746E"
	dragonBlue2  = "#8BA4B0"
	dragonViolet = "#8992A7"
	dragonPink   = "#A292A3"
	dragonAsh    = "#737C73"
	dragonWhite  = "#C5C9C5"

	springGreen = "#98BB6C"
	samuraiRed  = "#E82424"
	crystalBlue = "#7E9CD8"
	oniViolet   = "#957FB8"
	sakuraPink  = "#D27E99"
	fujiGray    = "#727169"
	fujiWhite   = "#DCD7BA"

	lotusGreen   = "#6F894E"
	lotusRed     = "#C84053"
	lotusBlue4   = "#4D699B"
	lotusViolet4 = "#624C83"
	lotusPink    = "#B35B79"
	lotusGray3   = "#8A8980"
	lotusInk1    = "#545464"
)

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset:  "dragon",
		Accent:  dragonViolet,
		Success: dragonGreen2,
		Alert:   dragonRed,
		Info:    dragonBlue2,
		Default: dragonPink,
		Title:   dragonBlue2,
		Subtle:  dragonAsh,
		Normal:  dragonWhite,
	}
}

// Wave returns the Kanagawa Wave color scheme
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset:  "wave",
		Accent:  oniViolet,
		Success: springGreen,
		Alert:   samuraiRed,
		Info:    crystalBlue,
		Default: sakuraPink,
		Title:   crystalBlue,
		Subtle:  fujiGray,
		Normal:  fujiWhite,
	}
}

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset:  "lotus",
		Accent:  lotusViolet4,
		Success: lotusGreen,
		Alert:   lotusRed,
		Info:    lotusBlue4,
		Default: lotusPink,
		Title:   lotusBlue4,
		Subtle:  lotusGray3,
		Normal:  lotusInk1,
	}
}
