package tui

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/router"
	"github.com/thenoetrevino/tablero/internal/tui/views"
	"github.com/thenoetrevino/tablero/internal/tui/views/kanban"
	"github.com/thenoetrevino/tablero/internal/tui/views/tasklist"
)

// Route paths and names
const (
	TaskPath   = "/"
	TaskName   = "Task"
	KanbanPath = "/kanban"
	KanbanName = "Kanban"
)

// Routes builds the route table. Views are constructed on first navigation.
func Routes(ctx context.Context, a *app.App, cfg *config.Config) (*router.Table, error) {
	keys := views.NewKeys(cfg.KeyMappings)

	return router.NewTable(
		router.Route{
			Path: TaskPath,
			Name: TaskName,
			Load: func() router.View {
				return tasklist.New(ctx, a.Store, a.TaskService, keys)
			},
		},
		router.Route{
			Path: KanbanPath,
			Name: KanbanName,
			Load: func() router.View {
				return kanban.New(ctx, a.Store, a.TaskService, keys)
			},
		},
	)
}
