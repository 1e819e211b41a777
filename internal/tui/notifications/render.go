package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// RenderInline renders a compact inline notification (for tab bar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	content := style.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	switch n.Level {
	case state.LevelError:
		return RenderInline(Error, n.Message)
	default:
		return RenderInline(Info, n.Message)
	}
}
