package views

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
)

// AddPrompt is the single-line title prompt both views use to create tasks.
type AddPrompt struct {
	input  textinput.Model
	status models.Status
	active bool
}

// NewAddPrompt creates an inactive prompt.
func NewAddPrompt() AddPrompt {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 255
	return AddPrompt{input: ti}
}

// Open activates the prompt for a task that will land in status.
func (p *AddPrompt) Open(status models.Status) tea.Cmd {
	p.status = status
	p.active = true
	p.input.Reset()
	return p.input.Focus()
}

// Close deactivates the prompt and drops its text.
func (p *AddPrompt) Close() {
	p.active = false
	p.input.Blur()
	p.input.Reset()
}

// Active reports whether the prompt is capturing keys.
func (p *AddPrompt) Active() bool {
	return p.active
}

// Status is the list the new task goes into.
func (p *AddPrompt) Status() models.Status {
	return p.status
}

// PromptResult says what a key did to the prompt.
type PromptResult int

const (
	PromptEditing PromptResult = iota
	PromptSubmitted
	PromptCancelled
)

// Update feeds msg to the prompt. On submit the trimmed title is returned
// and the prompt closes.
func (p *AddPrompt) Update(msg tea.Msg, keys Keys) (PromptResult, string, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(k, keys.Submit):
			title := strings.TrimSpace(p.input.Value())
			p.Close()
			return PromptSubmitted, title, nil
		case key.Matches(k, keys.Cancel):
			p.Close()
			return PromptCancelled, "", nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return PromptEditing, "", cmd
}

// View renders the prompt box, or nothing when inactive.
func (p *AddPrompt) View() string {
	if !p.active {
		return ""
	}
	header := components.TitleStyle.Render("New task in " + p.status.String())
	body := header + "\n" + p.input.View() + "\n" + components.SubtleStyle.Render(components.InputFooter)
	return components.CreateInputBoxStyle.Render(body)
}
