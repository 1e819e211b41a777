package kanban

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
	"github.com/thenoetrevino/tablero/internal/testutil"
	"github.com/thenoetrevino/tablero/internal/tui/messages"
	"github.com/thenoetrevino/tablero/internal/tui/views"
)

// newTestView returns a kanban view over to-do [A, B], in-progress [C].
func newTestView(t *testing.T) (*View, *store.TaskListStore) {
	t.Helper()
	st, svc := testutil.NewBoard(t, testutil.ExampleBoard...)
	return New(context.Background(), st, svc, views.NewKeys(config.DefaultKeyMappings())), st
}

func TestColumnNavigation(t *testing.T) {
	v, _ := newTestView(t)

	v.Update(testutil.KeyPress("j"))
	status, idx := v.Selection()
	assert.Equal(t, models.StatusToDo, status)
	assert.Equal(t, 1, idx)

	// In Progress has one task, so the task cursor clamps
	v.Update(testutil.KeyPress("l"))
	status, idx = v.Selection()
	assert.Equal(t, models.StatusInProgress, status)
	assert.Equal(t, 0, idx)

	v.Update(testutil.KeyPress("right"))
	v.Update(testutil.KeyPress("l"))
	status, _ = v.Selection()
	assert.Equal(t, models.StatusDone, status, "stops at the last column")

	v.Update(testutil.KeyPress("h"))
	v.Update(testutil.KeyPress("h"))
	v.Update(testutil.KeyPress("h"))
	status, _ = v.Selection()
	assert.Equal(t, models.StatusToDo, status, "stops at the first column")
}

func TestAddTaskToSelectedColumn(t *testing.T) {
	v, st := newTestView(t)

	v.Update(testutil.KeyPress("l"))
	v.Update(testutil.KeyPress("l"))
	v.Update(testutil.KeyPress("a"))
	require.True(t, v.InputFocused())

	for _, msg := range testutil.TypeText("shipped") {
		v.Update(msg)
	}
	v.Update(testutil.KeyPress("enter"))

	assert.Equal(t, []string{"shipped"}, testutil.Titles(st.Done))
	status, idx := v.Selection()
	assert.Equal(t, models.StatusDone, status)
	assert.Equal(t, 0, idx)
}

func TestMoveAcrossColumnsFollowsTask(t *testing.T) {
	v, st := newTestView(t)

	v.Update(testutil.KeyPress("j")) // B
	v.Update(testutil.KeyPress("L"))

	assert.Equal(t, []string{"A"}, testutil.Titles(st.ToDo))
	assert.Equal(t, []string{"C", "B"}, testutil.Titles(st.InProgress))
	status, idx := v.Selection()
	assert.Equal(t, models.StatusInProgress, status)
	assert.Equal(t, 1, idx)

	v.Update(testutil.KeyPress("H"))
	assert.Equal(t, []string{"A", "B"}, testutil.Titles(st.ToDo))
	status, idx = v.Selection()
	assert.Equal(t, models.StatusToDo, status)
	assert.Equal(t, 1, idx)

	cmd := v.Update(testutil.KeyPress("H"))
	require.NotNil(t, cmd)
	msg := cmd().(messages.NotifyMsg)
	assert.Equal(t, messages.Error, msg.Level)
	assert.Equal(t, 3, st.Len())
}

func TestReorder(t *testing.T) {
	v, st := newTestView(t)

	v.Update(testutil.KeyPress("J"))
	assert.Equal(t, []string{"B", "A"}, testutil.Titles(st.ToDo))

	cmd := v.Update(testutil.KeyPress("J"))
	require.NotNil(t, cmd, "already at the bottom")
	assert.Equal(t, []string{"B", "A"}, testutil.Titles(st.ToDo))
}

func TestDelete(t *testing.T) {
	v, st := newTestView(t)

	v.Update(testutil.KeyPress("j"))
	v.Update(testutil.KeyPress("d"))

	assert.Equal(t, []string{"A"}, testutil.Titles(st.ToDo))
	_, idx := v.Selection()
	assert.Equal(t, 0, idx)
}

func TestBoardReset(t *testing.T) {
	v, st := newTestView(t)
	v.Update(testutil.KeyPress("j"))

	st.ResetAllList()
	v.Update(messages.BoardResetMsg{})

	_, idx := v.Selection()
	assert.Equal(t, 0, idx)
	assert.Nil(t, v.Update(testutil.KeyPress("d")))
}

func TestViewRendersColumns(t *testing.T) {
	v, _ := newTestView(t)
	v.Update(tea.WindowSizeMsg{Width: 200, Height: 40})

	out := v.View(200, 40)
	assert.Contains(t, out, "To Do (2)")
	assert.Contains(t, out, "In Progress (1)")
	assert.Contains(t, out, "Done (0)")
}
