package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for borders, prompts, highlights)
	Accent string `yaml:"accent"`

	// Message roles
	Success string `yaml:"success"` // Green - completed steps
	Alert   string `yaml:"alert"`   // Red - failures and overwrite warnings
	Info    string `yaml:"info"`    // Blue - section headers, user values
	Default string `yaml:"default"` // Magenta - default values shown in prompts

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
}

// Presets lists the names GetPreset understands
var Presets = []string{"default", "monochrome", "dragon", "wave", "lotus"}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	case "wave":
		return Wave()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Success, preset.Success)
	fill(&c.Alert, preset.Alert)
	fill(&c.Info, preset.Info)
	fill(&c.Default, preset.Default)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Success, other.Success)
	merge(&c.Alert, other.Alert)
	merge(&c.Info, other.Info)
	merge(&c.Default, other.Default)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
}
