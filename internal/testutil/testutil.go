// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
	"github.com/thenoetrevino/tablero/internal/store"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SeedTask describes a task to put on a test board.
type SeedTask struct {
	Title  string
	Status models.Status
}

// ExampleBoard is to-do [A, B], in-progress [C], done [].
var ExampleBoard = []SeedTask{
	{"A", models.StatusToDo},
	{"B", models.StatusToDo},
	{"C", models.StatusInProgress},
}

// NewBoard creates a store and task service seeded with tasks.
func NewBoard(t *testing.T, tasks ...SeedTask) (*store.TaskListStore, taskservice.Service) {
	t.Helper()

	st := store.New()
	svc := taskservice.NewService(st, DiscardLogger())
	for _, seed := range tasks {
		_, err := svc.CreateTask(context.Background(), taskservice.CreateTaskRequest{
			Title:  seed.Title,
			Status: seed.Status,
		})
		if err != nil {
			t.Fatalf("Failed to seed task %q: %v", seed.Title, err)
		}
	}
	return st, svc
}

// Titles returns the titles of tasks in order.
func Titles(tasks []*models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

// KeyPress builds the key message a terminal sends for s.
// Named keys (tab, shift+tab, esc, enter, arrows, ctrl+c) are mapped to
// their key codes; anything else is sent as typed text.
func KeyPress(s string) tea.KeyPressMsg {
	switch s {
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "shift+tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

// TypeText returns one key press per rune of text.
func TypeText(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
	return msgs
}
