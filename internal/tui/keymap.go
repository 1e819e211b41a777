package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/config"
)

// globalKeys are handled by the host before the routed view sees a key.
type globalKeys struct {
	Quit        key.Binding
	Help        key.Binding
	NextRoute   key.Binding
	PrevRoute   key.Binding
	TaskRoute   key.Binding
	KanbanRoute key.Binding
	ResetBoard  key.Binding
	Confirm     key.Binding
	Deny        key.Binding
}

func newGlobalKeys(km config.KeyMappings) globalKeys {
	return globalKeys{
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		NextRoute: key.NewBinding(
			key.WithKeys(km.NextRoute),
			key.WithHelp(km.NextRoute, "next view"),
		),
		PrevRoute: key.NewBinding(
			key.WithKeys(km.PrevRoute),
			key.WithHelp(km.PrevRoute, "previous view"),
		),
		TaskRoute: key.NewBinding(
			key.WithKeys(km.TaskRoute),
			key.WithHelp(km.TaskRoute, "task list"),
		),
		KanbanRoute: key.NewBinding(
			key.WithKeys(km.KanbanRoute),
			key.WithHelp(km.KanbanRoute, "kanban board"),
		),
		ResetBoard: key.NewBinding(
			key.WithKeys(km.ResetBoard),
			key.WithHelp(km.ResetBoard, "reset board"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}

// bindings lists the global keys shown in help, in display order.
func (k globalKeys) bindings() []key.Binding {
	return []key.Binding{
		k.NextRoute,
		k.PrevRoute,
		k.TaskRoute,
		k.KanbanRoute,
		k.ResetBoard,
		k.Help,
		k.Quit,
	}
}
