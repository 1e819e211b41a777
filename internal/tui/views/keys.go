// Package views holds what the routed views share: key bindings built from
// the config and the add-task prompt.
package views

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/config"
)

// Keys are the bindings the routed views respond to.
type Keys struct {
	AddTask    key.Binding
	DeleteTask key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

// NewKeys builds view bindings from the configured key mappings.
// Arrow keys are always bound alongside the configured navigation keys.
func NewKeys(km config.KeyMappings) Keys {
	return Keys{
		AddTask: key.NewBinding(
			key.WithKeys(km.AddTask),
			key.WithHelp(km.AddTask, "add task"),
		),
		DeleteTask: key.NewBinding(
			key.WithKeys(km.DeleteTask),
			key.WithHelp(km.DeleteTask, "delete task"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys(km.MoveTaskLeft),
			key.WithHelp(km.MoveTaskLeft, "move to previous list"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys(km.MoveTaskRight),
			key.WithHelp(km.MoveTaskRight, "move to next list"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys(km.MoveTaskUp),
			key.WithHelp(km.MoveTaskUp, "move task up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys(km.MoveTaskDown),
			key.WithHelp(km.MoveTaskDown, "move task down"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys(km.PrevColumn, "left"),
			key.WithHelp(km.PrevColumn, "previous column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys(km.NextColumn, "right"),
			key.WithHelp(km.NextColumn, "next column"),
		),
		PrevTask: key.NewBinding(
			key.WithKeys(km.PrevTask, "up"),
			key.WithHelp(km.PrevTask, "previous task"),
		),
		NextTask: key.NewBinding(
			key.WithKeys(km.NextTask, "down"),
			key.WithHelp(km.NextTask, "next task"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
