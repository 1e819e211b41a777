// Package tasklist is the "/" route: every task on the board in one table.
package tasklist

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/tablero/internal/models"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
	"github.com/thenoetrevino/tablero/internal/store"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/messages"
	"github.com/thenoetrevino/tablero/internal/tui/views"
)

// row is one table line: the task and where it lives in the store.
type row struct {
	task *models.Task
	pos  taskservice.Position
}

// View lists the to-do, in-progress and done tasks in that order.
type View struct {
	ctx    context.Context
	store  *store.TaskListStore
	tasks  taskservice.Service
	keys   views.Keys
	prompt views.AddPrompt
	cursor int
}

// New creates the task list view.
func New(ctx context.Context, st *store.TaskListStore, svc taskservice.Service, keys views.Keys) *View {
	return &View{
		ctx:    ctx,
		store:  st,
		tasks:  svc,
		keys:   keys,
		prompt: views.NewAddPrompt(),
	}
}

func (v *View) Init() tea.Cmd {
	return nil
}

// InputFocused reports whether the add prompt is capturing keys.
func (v *View) InputFocused() bool {
	return v.prompt.Active()
}

// Cursor returns the selected row.
func (v *View) Cursor() int {
	return v.cursor
}

func (v *View) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case messages.BoardResetMsg:
		v.cursor = 0
		return nil

	case tea.KeyPressMsg:
		if v.prompt.Active() {
			return v.updatePrompt(msg)
		}
		return v.handleKey(msg)
	}

	if v.prompt.Active() {
		_, _, cmd := v.prompt.Update(msg, v.keys)
		return cmd
	}
	return nil
}

func (v *View) updatePrompt(msg tea.KeyPressMsg) tea.Cmd {
	result, title, cmd := v.prompt.Update(msg, v.keys)
	if result != views.PromptSubmitted {
		return cmd
	}

	task, err := v.tasks.CreateTask(v.ctx, taskservice.CreateTaskRequest{
		Title:  title,
		Status: v.prompt.Status(),
	})
	if err != nil {
		return messages.NotifyError(err)
	}
	v.selectTask(task.ID)
	return messages.Notify(fmt.Sprintf("Added %q", task.Title))
}

func (v *View) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	rows := v.rows()

	switch {
	case key.Matches(msg, v.keys.NextTask):
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
		return nil
	case key.Matches(msg, v.keys.PrevTask):
		if v.cursor > 0 {
			v.cursor--
		}
		return nil
	case key.Matches(msg, v.keys.AddTask):
		return v.prompt.Open(models.StatusToDo)
	}

	if len(rows) == 0 {
		return nil
	}
	v.clamp(len(rows))
	selected := rows[v.cursor]

	var move func(context.Context, models.Status, int) (taskservice.Position, error)
	switch {
	case key.Matches(msg, v.keys.DeleteTask):
		task, err := v.tasks.DeleteTask(v.ctx, selected.pos.Status, selected.pos.Index)
		if err != nil {
			return messages.NotifyError(err)
		}
		v.clamp(len(rows) - 1)
		return messages.Notify(fmt.Sprintf("Deleted %q", task.Title))
	case key.Matches(msg, v.keys.MoveRight):
		move = v.tasks.MoveTaskToNextColumn
	case key.Matches(msg, v.keys.MoveLeft):
		move = v.tasks.MoveTaskToPrevColumn
	case key.Matches(msg, v.keys.MoveUp):
		move = v.tasks.MoveTaskUp
	case key.Matches(msg, v.keys.MoveDown):
		move = v.tasks.MoveTaskDown
	default:
		return nil
	}

	if _, err := move(v.ctx, selected.pos.Status, selected.pos.Index); err != nil {
		return messages.NotifyError(err)
	}
	v.selectTask(selected.task.ID)
	return nil
}

// rows flattens the store in list order.
func (v *View) rows() []row {
	var out []row
	for _, status := range models.Statuses {
		for i, t := range v.store.List(status) {
			out = append(out, row{task: t, pos: taskservice.Position{Status: status, Index: i}})
		}
	}
	return out
}

// selectTask moves the cursor onto the task with id.
func (v *View) selectTask(id string) {
	for i, r := range v.rows() {
		if r.task.ID == id {
			v.cursor = i
			return
		}
	}
}

func (v *View) clamp(n int) {
	v.cursor = min(v.cursor, n-1)
	v.cursor = max(v.cursor, 0)
}

func (v *View) View(width, height int) string {
	rows := v.rows()
	prompt := v.prompt.View()

	if len(rows) == 0 {
		empty := components.SubtleStyle.Render(
			fmt.Sprintf("No tasks. Press %s to add one.", v.keys.AddTask.Help().Key))
		return lipgloss.JoinVertical(lipgloss.Left, empty, prompt)
	}
	v.clamp(len(rows))

	// header + three border lines
	const tableOverhead = 4
	visible := max(height-tableOverhead-lipgloss.Height(prompt), 1)
	start := 0
	if v.cursor >= visible {
		start = v.cursor - visible + 1
	}
	end := min(start+visible, len(rows))

	data := make([][]string, 0, end-start)
	for _, r := range rows[start:end] {
		data = append(data, []string{
			components.ShortID(r.task.ID),
			components.TruncateTitle(r.task.Title),
			r.pos.Status.String(),
			humanize.Time(r.task.CreatedAt),
		})
	}

	cursor := v.cursor - start
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(components.TitleStyle.UnsetBold()).
		Headers("ID", "Title", "Status", "Age").
		Rows(data...).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return components.TitleStyle.Padding(0, 1)
			case row == cursor:
				return components.SelectedRowStyle.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		})

	parts := []string{t.String()}
	if prompt != "" {
		parts = append(parts, prompt)
	}
	return strings.Join(parts, "\n")
}

func (v *View) KeyBindings() []key.Binding {
	return []key.Binding{
		v.keys.AddTask,
		v.keys.DeleteTask,
		v.keys.PrevTask,
		v.keys.NextTask,
		v.keys.MoveUp,
		v.keys.MoveDown,
		v.keys.MoveLeft,
		v.keys.MoveRight,
	}
}
