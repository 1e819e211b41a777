package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// setupTestModel creates a model over a fresh app. With demo set the board
// starts with the demo tasks.
func setupTestModel(t *testing.T, start string, demo bool) Model {
	t.Helper()

	opts := []app.Option{app.WithLogger(testutil.DiscardLogger())}
	if demo {
		opts = append(opts, app.WithDemoData())
	}

	m, err := InitialModel(context.Background(), app.New(opts...), config.Default(), start)
	require.NoError(t, err)
	return m
}

// update sends msg and returns the updated model and command.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// sendKeys sends each key in order, discarding commands.
func sendKeys(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = update(m, testutil.KeyPress(k))
	}
	return m
}

// typeText sends one key press per rune of text.
func typeText(m Model, text string) Model {
	for _, msg := range testutil.TypeText(text) {
		m, _ = update(m, msg)
	}
	return m
}
