// Package kanban is the "/kanban" route: the three lists as side by side columns.
package kanban

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
	"github.com/thenoetrevino/tablero/internal/store"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/messages"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/views"
)

// View renders one column per list and keeps a column/task cursor.
type View struct {
	ctx    context.Context
	store  *store.TaskListStore
	tasks  taskservice.Service
	keys   views.Keys
	prompt views.AddPrompt
	board  *state.BoardState
}

// New creates the kanban view.
func New(ctx context.Context, st *store.TaskListStore, svc taskservice.Service, keys views.Keys) *View {
	return &View{
		ctx:    ctx,
		store:  st,
		tasks:  svc,
		keys:   keys,
		prompt: views.NewAddPrompt(),
		board:  state.NewBoardState(),
	}
}

func (v *View) Init() tea.Cmd {
	return nil
}

// InputFocused reports whether the add prompt is capturing keys.
func (v *View) InputFocused() bool {
	return v.prompt.Active()
}

// Selection returns the selected column's status and the task index in it.
func (v *View) Selection() (models.Status, int) {
	return v.currentStatus(), v.board.SelectedTask()
}

func (v *View) currentStatus() models.Status {
	return models.Statuses[v.board.SelectedColumn()]
}

func (v *View) currentTasks() []*models.Task {
	return v.store.List(v.currentStatus())
}

func (v *View) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.board.SetWidth(msg.Width)
		return nil

	case messages.BoardResetMsg:
		v.board.SetSelectedTask(0)
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

	status := v.prompt.Status()
	task, err := v.tasks.CreateTask(v.ctx, taskservice.CreateTaskRequest{
		Title:  title,
		Status: status,
	})
	if err != nil {
		return messages.NotifyError(err)
	}
	v.selectPosition(taskservice.Position{Status: status, Index: len(v.store.List(status)) - 1})
	return messages.Notify(fmt.Sprintf("Added %q to %s", task.Title, status))
}

func (v *View) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	col := v.board.SelectedColumn()

	switch {
	case key.Matches(msg, v.keys.NextColumn):
		if col < len(models.Statuses)-1 {
			v.board.SetSelectedColumn(col + 1)
			v.board.Clamp(len(v.currentTasks()))
		}
		return nil
	case key.Matches(msg, v.keys.PrevColumn):
		if col > 0 {
			v.board.SetSelectedColumn(col - 1)
			v.board.Clamp(len(v.currentTasks()))
		}
		return nil
	case key.Matches(msg, v.keys.NextTask):
		if v.board.SelectedTask() < len(v.currentTasks())-1 {
			v.board.SetSelectedTask(v.board.SelectedTask() + 1)
		}
		return nil
	case key.Matches(msg, v.keys.PrevTask):
		if v.board.SelectedTask() > 0 {
			v.board.SetSelectedTask(v.board.SelectedTask() - 1)
		}
		return nil
	case key.Matches(msg, v.keys.AddTask):
		return v.prompt.Open(v.currentStatus())
	}

	tasks := v.currentTasks()
	if len(tasks) == 0 {
		return nil
	}
	v.board.Clamp(len(tasks))
	status, index := v.Selection()

	var move func(context.Context, models.Status, int) (taskservice.Position, error)
	switch {
	case key.Matches(msg, v.keys.DeleteTask):
		task, err := v.tasks.DeleteTask(v.ctx, status, index)
		if err != nil {
			return messages.NotifyError(err)
		}
		v.board.Clamp(len(v.currentTasks()))
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

	pos, err := move(v.ctx, status, index)
	if err != nil {
		return messages.NotifyError(err)
	}
	v.selectPosition(pos)
	return nil
}

// selectPosition puts the cursor on pos, so the selection follows a moved task.
func (v *View) selectPosition(pos taskservice.Position) {
	for i, s := range models.Statuses {
		if s == pos.Status {
			v.board.SetSelectedColumn(i)
			break
		}
	}
	v.board.SetSelectedTask(pos.Index)
}

func (v *View) View(width, height int) string {
	prompt := v.prompt.View()
	columnHeight := max(height-lipgloss.Height(prompt), components.TaskCardHeight+4)

	v.board.Clamp(len(v.currentTasks()))
	offset := v.board.ViewportOffset()
	end := min(offset+v.board.ViewportSize(), len(models.Statuses))

	var columns []string
	for i := offset; i < end; i++ {
		status := models.Statuses[i]
		selected := i == v.board.SelectedColumn()
		columns = append(columns, components.RenderColumn(
			status, v.store.List(status), selected, v.board.SelectedTask(), columnHeight))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if offset > 0 || end < len(models.Statuses) {
		board = lipgloss.JoinVertical(lipgloss.Left, board,
			components.SubtleStyle.Render(fmt.Sprintf("columns %d-%d of %d", offset+1, end, len(models.Statuses))))
	}
	if prompt != "" {
		board = lipgloss.JoinVertical(lipgloss.Left, board, prompt)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(board)
}

func (v *View) KeyBindings() []key.Binding {
	return []key.Binding{
		v.keys.AddTask,
		v.keys.DeleteTask,
		v.keys.PrevColumn,
		v.keys.NextColumn,
		v.keys.PrevTask,
		v.keys.NextTask,
		v.keys.MoveLeft,
		v.keys.MoveRight,
		v.keys.MoveUp,
		v.keys.MoveDown,
	}
}
