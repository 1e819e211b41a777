package theme

import "github.com/thenoetrevino/tablero/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	Delete         string
	SelectedBorder string
	SelectedBg     string
	TaskBg         string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Delete = colors.Delete
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	TaskBg = colors.TaskBackground
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
