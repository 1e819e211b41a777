package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the active tab, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - add task prompt
	Delete string `yaml:"delete"` // Red - reset confirmation

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot paired by pointer, so ApplyDefaults and
// MergeFrom can walk them without repeating each field name
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Create,
		&c.Delete,
		&c.ColumnBorder,
		&c.TaskBorder,
		&c.TaskBackground,
		&c.SelectedBorder,
		&c.SelectedBg,
		&c.Title,
		&c.Subtle,
		&c.Normal,
		&c.InfoFg,
		&c.InfoBg,
		&c.ErrorFg,
		&c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then keeps custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset).fields()
	for i, field := range c.fields() {
		if *field == "" {
			*field = *preset[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	theirs := other.fields()
	for i, field := range c.fields() {
		if *theirs[i] != "" {
			*field = *theirs[i]
		}
	}
}
