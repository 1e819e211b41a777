// Package messages holds the tea.Msg types routed views use to talk to the
// host model.
package messages

import (
	tea "charm.land/bubbletea/v2"
)

// NavigateMsg asks the host to switch to the route at Path.
type NavigateMsg struct {
	Path string
}

// Level is the severity of a NotifyMsg.
type Level int

const (
	Info Level = iota
	Error
)

// NotifyMsg asks the host to show an inline notification.
type NotifyMsg struct {
	Level   Level
	Message string
}

// BoardResetMsg is sent to every loaded view after the board was emptied.
type BoardResetMsg struct{}

// Navigate returns a command that requests navigation to path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// Notify returns a command that shows an info notification.
func Notify(message string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Level: Info, Message: message}
	}
}

// NotifyError returns a command that shows err as an error notification.
func NotifyError(err error) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Level: Error, Message: err.Error()}
	}
}
