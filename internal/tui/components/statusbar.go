package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	// Help is the short help line for the active view
	Help string
	// Counts holds the to-do, in-progress and done totals
	Counts [3]int
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the active view's short help
// Right side: list counts and "? help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := props.Help
	rightText := fmt.Sprintf("%d todo · %d doing · %d done  ? help",
		props.Counts[0], props.Counts[1], props.Counts[2])

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
