package task

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T) (Service, *store.TaskListStore) {
	t.Helper()
	st := store.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(st, logger), st
}

func createTask(t *testing.T, svc Service, title string, status models.Status) *models.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), CreateTaskRequest{Title: title, Status: status})
	require.NoError(t, err)
	return task
}

func titles(tasks []*models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

// assertSingleHome checks every task appears in exactly one list
func assertSingleHome(t *testing.T, st *store.TaskListStore) {
	t.Helper()
	seen := map[string]models.Status{}
	for _, status := range models.Statuses {
		for _, task := range st.List(status) {
			if prev, dup := seen[task.ID]; dup {
				t.Errorf("task %s found in both %s and %s", task.Title, prev, status)
			}
			seen[task.ID] = status
		}
	}
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateTask(t *testing.T) {
	svc, st := setupService(t)

	task, err := svc.CreateTask(context.Background(), CreateTaskRequest{
		Title:       "  Write docs  ",
		Description: "the **README**",
		Status:      models.StatusInProgress,
	})
	require.NoError(t, err)

	assert.Equal(t, "Write docs", task.Title, "title should be trimmed")
	assert.Equal(t, "the **README**", task.Description)
	assert.NotEmpty(t, task.ID)
	require.Len(t, st.InProgress, 1)
	assert.Same(t, task, st.InProgress[0])
	assert.Empty(t, st.ToDo)
}

func TestCreateTask_AppendsInOrder(t *testing.T) {
	svc, st := setupService(t)

	createTask(t, svc, "A", models.StatusToDo)
	createTask(t, svc, "B", models.StatusToDo)
	createTask(t, svc, "C", models.StatusToDo)

	assert.Equal(t, []string{"A", "B", "C"}, titles(st.ToDo))
}

func TestCreateTask_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateTaskRequest
		wantErr error
	}{
		{"empty title", CreateTaskRequest{Title: ""}, ErrEmptyTitle},
		{"whitespace title", CreateTaskRequest{Title: "   \t"}, ErrEmptyTitle},
		{"title too long", CreateTaskRequest{Title: strings.Repeat("x", MaxTitleLength+1)}, ErrTitleTooLong},
		{"invalid status", CreateTaskRequest{Title: "ok", Status: models.Status(7)}, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := setupService(t)
			_, err := svc.CreateTask(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, st.IsEmpty(), "failed create must not touch the store")
		})
	}
}

func TestCreateTask_MaxLengthTitle(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.CreateTask(context.Background(), CreateTaskRequest{Title: strings.Repeat("x", MaxTitleLength)})
	assert.NoError(t, err)
}

// ============================================================================
// DELETE & RESET
// ============================================================================

func TestDeleteTask(t *testing.T) {
	svc, st := setupService(t)
	createTask(t, svc, "A", models.StatusToDo)
	createTask(t, svc, "B", models.StatusToDo)
	createTask(t, svc, "C", models.StatusToDo)

	deleted, err := svc.DeleteTask(context.Background(), models.StatusToDo, 1)
	require.NoError(t, err)

	assert.Equal(t, "B", deleted.Title)
	assert.Equal(t, []string{"A", "C"}, titles(st.ToDo))
}

func TestDeleteTask_OutOfRange(t *testing.T) {
	svc, _ := setupService(t)
	createTask(t, svc, "A", models.StatusToDo)

	for _, idx := range []int{-1, 1, 10} {
		_, err := svc.DeleteTask(context.Background(), models.StatusToDo, idx)
		assert.ErrorIs(t, err, ErrTaskNotFound, "index %d", idx)
	}

	_, err := svc.DeleteTask(context.Background(), models.StatusDone, 0)
	assert.ErrorIs(t, err, ErrTaskNotFound, "empty list")

	_, err = svc.DeleteTask(context.Background(), models.Status(-1), 0)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestResetBoard(t *testing.T) {
	svc, st := setupService(t)
	createTask(t, svc, "A", models.StatusToDo)
	createTask(t, svc, "B", models.StatusToDo)
	createTask(t, svc, "C", models.StatusInProgress)

	svc.ResetBoard(context.Background())
	assert.True(t, st.IsEmpty())

	svc.ResetBoard(context.Background())
	assert.True(t, st.IsEmpty(), "reset twice should stay empty")
}

// ============================================================================
// MOVEMENT
// ============================================================================

func TestMoveTaskToNextColumn(t *testing.T) {
	svc, st := setupService(t)
	createTask(t, svc, "A", models.StatusToDo)
	createTask(t, svc, "B", models.StatusToDo)
	createTask(t, svc, "C", models.StatusInProgress)

	pos, err := svc.MoveTaskToNextColumn(context.Background(), models.StatusToDo, 0)
	require.NoError(t, err)

	assert.Equal(t, Position{Status: models.StatusInProgress, Index: 1}, pos)
	assert.Equal(t, []string{"B"}, titles(st.ToDo))
	assert.Equal(t, []string{"C", "A"}, titles(st.InProgress))
	assert.Equal(t, 3, st.Len())
	assertSingleHome(t, st)
}

func TestMoveTaskToPrevColumn(t *testing.T) {
	svc, st := setupService(t)
	createTask(t, svc, "D", models.StatusDone)

	pos, err := svc.MoveTaskToPrevColumn(context.Background(), models.StatusDone, 0)
	require.NoError(t, err)

	assert.Equal(t, Position{Status: models.StatusInProgress, Index: 0}, pos)
	assert.Empty(t, st.Done)
	assert.Equal(t, []string{"D"}, titles(st.InProgress))
}

func TestMoveAcross_Edges(t *testing.T) {
	svc, st := setupService(t)
	createTask(t, svc, "first", models.StatusToDo)
	createTask(t, svc, "last", models.StatusDone)

	pos, err := svc.MoveTaskToPrevColumn(context.Background(), models.StatusToDo, 0)
	assert.ErrorIs(t, err, ErrAlreadyFirstColumn)
	assert.Equal(t, Position{Status: models.StatusToDo, Index: 0}, pos)

	_, err = svc.MoveTaskToNextColumn(context.Background(), models.StatusDone, 0)
	assert.ErrorIs(t, err, ErrAlreadyLastColumn)
	assert.True(t, errors.Is(err, models.ErrAlreadyLastColumn), "service errors alias model errors")

	assert.Len(t, st.ToDo, 1)
	assert.Len(t, st.Done, 1)
}

func TestMoveAcross_Missing(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.MoveTaskToNextColumn(context.Background(), models.StatusToDo, 0)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestMoveTaskUpDown(t *testing.T) {
	svc, st := setupService(t)
	createTask(t, svc, "A", models.StatusToDo)
	createTask(t, svc, "B", models.StatusToDo)
	createTask(t, svc, "C", models.StatusToDo)

	pos, err := svc.MoveTaskUp(context.Background(), models.StatusToDo, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, pos.Index)
	assert.Equal(t, []string{"A", "C", "B"}, titles(st.ToDo))

	pos, err = svc.MoveTaskDown(context.Background(), models.StatusToDo, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, pos.Index)
	assert.Equal(t, []string{"C", "A", "B"}, titles(st.ToDo))

	_, err = svc.MoveTaskUp(context.Background(), models.StatusToDo, 0)
	assert.ErrorIs(t, err, ErrAlreadyFirstTask)

	_, err = svc.MoveTaskDown(context.Background(), models.StatusToDo, 2)
	assert.ErrorIs(t, err, ErrAlreadyLastTask)

	assert.Equal(t, []string{"C", "A", "B"}, titles(st.ToDo), "failed moves leave order alone")
}

// TestMoves_KeepSingleHome walks a task across the whole board and back
func TestMoves_KeepSingleHome(t *testing.T) {
	svc, st := setupService(t)
	createTask(t, svc, "walker", models.StatusToDo)
	createTask(t, svc, "other", models.StatusInProgress)

	ctx := context.Background()
	pos := Position{Status: models.StatusToDo, Index: 0}
	var err error
	for range 2 {
		pos, err = svc.MoveTaskToNextColumn(ctx, pos.Status, pos.Index)
		require.NoError(t, err)
		assertSingleHome(t, st)
	}
	assert.Equal(t, models.StatusDone, pos.Status)

	for range 2 {
		pos, err = svc.MoveTaskToPrevColumn(ctx, pos.Status, pos.Index)
		require.NoError(t, err)
		assertSingleHome(t, st)
	}
	assert.Equal(t, models.StatusToDo, pos.Status)
	assert.Equal(t, 2, st.Len())
}

func TestNewService_NilLogger(t *testing.T) {
	svc := NewService(store.New(), nil)

	_, err := svc.CreateTask(context.Background(), CreateTaskRequest{Title: "ok"})
	assert.NoError(t, err)
}
