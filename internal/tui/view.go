package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	width := m.UiState.Width()
	contentHeight := m.UiState.ContentHeight()

	var content string
	switch m.UiState.Mode() {
	case state.HelpMode:
		content = m.viewHelp(width, contentHeight)
	case state.ResetConfirmMode:
		content = m.viewResetConfirm(width, contentHeight)
	default:
		content = m.Router.CurrentView().View(width, contentHeight)
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(width),
		lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content),
		components.RenderStatusBar(components.StatusBarProps{
			Width:  width,
			Help:   m.help.ShortHelpView(m.Router.CurrentView().KeyBindings()),
			Counts: m.counts(),
		}),
	)
	return view
}

// viewTabs renders one tab per route with the latest notification on the right.
func (m Model) viewTabs(width int) string {
	var names []string
	for _, r := range m.Router.Table().Routes() {
		names = append(names, r.Name)
	}

	var notification string
	if n, ok := m.NotificationState.Latest(); ok {
		notification = notifications.RenderInlineFromState(n)
	}
	return components.RenderTabs(names, m.Router.CurrentIndex(), width, notification)
}

func (m Model) viewHelp(width, height int) string {
	boxWidth := min(width-4, 80)
	body := components.RenderMarkdown(m.helpMarkdown(), max(boxWidth-6, 20))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.HelpBoxStyle.Width(boxWidth).Render(body))
}

func (m Model) viewResetConfirm(width, height int) string {
	box := components.ResetConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("Reset board?\nThis removes all %d task(s) from every list.\n\n[y]es  [n]o", m.App.Store.Len()))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
