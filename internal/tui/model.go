package tui

import (
	"context"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/router"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// inputCapturer is implemented by views that can hold keyboard focus,
// such as an open add-task prompt. While focused, global keys are not handled.
type inputCapturer interface {
	InputFocused() bool
}

// Model represents the application state for the TUI
type Model struct {
	Ctx               context.Context
	App               *app.App
	Config            *config.Config
	Router            *router.Router
	UiState           *state.UIState
	NotificationState *state.NotificationState

	keys   globalKeys
	help   help.Model
	logger *slog.Logger

	// initialized records which route paths have had Init called
	initialized map[string]bool
}

// InitialModel creates the TUI model positioned at startPath.
// An unknown startPath falls back to "/" with an error notification.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config, startPath string) (Model, error) {
	components.InitStyles(cfg.ColorScheme)

	table, err := Routes(ctx, a, cfg)
	if err != nil {
		return Model{}, fmt.Errorf("building route table: %w", err)
	}

	notificationState := state.NewNotificationState()

	r, err := router.NewRouter(table, startPath)
	if err != nil {
		a.Logger().Warn("unknown start route", "path", startPath, "error", err)
		notificationState.Add(state.LevelError, err.Error())
		r, err = router.NewRouter(table, TaskPath)
		if err != nil {
			return Model{}, err
		}
	}

	return Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		Router:            r,
		UiState:           state.NewUIState(),
		NotificationState: notificationState,
		keys:              newGlobalKeys(cfg.KeyMappings),
		help:              help.New(),
		logger:            a.Logger(),
		initialized:       map[string]bool{},
	}, nil
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.initCurrent()
}

// initCurrent runs Init on the current view the first time it becomes active.
func (m Model) initCurrent() tea.Cmd {
	path := m.Router.Current().Path
	if m.initialized[path] {
		return nil
	}
	m.initialized[path] = true

	cmds := []tea.Cmd{m.Router.CurrentView().Init()}
	if m.UiState.Width() > 0 {
		size := tea.WindowSizeMsg{Width: m.UiState.Width(), Height: m.UiState.Height()}
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

// inputFocused reports whether the current view is capturing keys.
func (m Model) inputFocused() bool {
	if c, ok := m.Router.CurrentView().(inputCapturer); ok {
		return c.InputFocused()
	}
	return false
}

// loadedViews returns every view that has been constructed.
func (m Model) loadedViews() []router.View {
	table := m.Router.Table()
	var out []router.View
	for _, r := range table.Routes() {
		if !table.Loaded(r.Path) {
			continue
		}
		v, err := table.Resolve(r.Path)
		if err == nil {
			out = append(out, v)
		}
	}
	return out
}

// counts returns the lengths of the three lists.
func (m Model) counts() [3]int {
	st := m.App.Store
	return [3]int{len(st.ToDo), len(st.InProgress), len(st.Done)}
}
