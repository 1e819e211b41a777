package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/router"
	"github.com/thenoetrevino/tablero/internal/tui/messages"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		return m, m.broadcast(msg)

	case tea.KeyPressMsg:
		m.NotificationState.Clear()
		switch m.UiState.Mode() {
		case state.HelpMode:
			return m.handleHelpMode(msg)
		case state.ResetConfirmMode:
			return m.handleResetConfirmMode(msg)
		default:
			return m.handleNormalMode(msg)
		}

	case messages.NavigateMsg:
		return m.navigate(func() (router.View, error) {
			return m.Router.Navigate(msg.Path)
		})

	case messages.NotifyMsg:
		level := state.LevelInfo
		if msg.Level == messages.Error {
			level = state.LevelError
		}
		m.NotificationState.Add(level, msg.Message)
		return m, nil

	case messages.BoardResetMsg:
		return m, m.broadcast(msg)
	}

	return m, m.Router.CurrentView().Update(msg)
}

// handleNormalMode runs global bindings, then hands the key to the routed view.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.inputFocused() {
		return m, m.Router.CurrentView().Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.keys.NextRoute):
		return m.navigate(m.Router.Next)
	case key.Matches(msg, m.keys.PrevRoute):
		return m.navigate(m.Router.Prev)
	case key.Matches(msg, m.keys.TaskRoute):
		return m.navigate(func() (router.View, error) {
			return m.Router.Navigate(TaskPath)
		})
	case key.Matches(msg, m.keys.KanbanRoute):
		return m.navigate(func() (router.View, error) {
			return m.Router.Navigate(KanbanPath)
		})
	case key.Matches(msg, m.keys.ResetBoard):
		m.UiState.SetMode(state.ResetConfirmMode)
		return m, nil
	}

	return m, m.Router.CurrentView().Update(msg)
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help, m.keys.Quit) {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	switch msg.String() {
	case "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleResetConfirmMode waits for y/n before emptying the board.
func (m Model) handleResetConfirmMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		removed := m.App.Store.Len()
		m.App.TaskService.ResetBoard(m.Ctx)
		m.UiState.SetMode(state.NormalMode)
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Board reset, %d task(s) removed", removed))
		return m, func() tea.Msg { return messages.BoardResetMsg{} }
	case key.Matches(msg, m.keys.Deny):
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// navigate applies a router move. Failures leave the location unchanged and
// surface as an error notification.
func (m Model) navigate(move func() (router.View, error)) (tea.Model, tea.Cmd) {
	from := m.Router.Current().Path
	if _, err := move(); err != nil {
		m.logger.Warn("navigation failed", "from", from, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return m, nil
	}
	m.logger.Debug("navigated", "from", from, "to", m.Router.Current().Path)
	return m, m.initCurrent()
}

// broadcast sends msg to every constructed view.
func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.loadedViews() {
		cmds = append(cmds, v.Update(msg))
	}
	return tea.Batch(cmds...)
}
