package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
)

// helpMarkdown lists the global keys and the current view's keys as
// markdown tables for the help overlay.
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keyboard shortcuts\n\n")

	writeSection(&b, "Global", m.keys.bindings())
	writeSection(&b, m.Router.Current().Name, m.Router.CurrentView().KeyBindings())

	b.WriteString("Press `esc` or `" + m.keys.Help.Help().Key + "` to close.\n")
	return b.String()
}

func writeSection(b *strings.Builder, title string, bindings []key.Binding) {
	fmt.Fprintf(b, "## %s\n\n| Key | Action |\n|---|---|\n", title)
	for _, k := range bindings {
		h := k.Help()
		fmt.Fprintf(b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\n")
}
