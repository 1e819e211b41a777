package app

import (
	"context"
	"log/slog"

	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
	"github.com/thenoetrevino/tablero/internal/store"
)

// App holds the session state and the services that operate on it.
// This is the main application container the TUI and the CLI share.
type App struct {
	// Store is the session's three task lists
	Store *store.TaskListStore

	// Service layer (business logic)
	TaskService taskservice.Service

	logger *slog.Logger
}

// New creates a new App with an empty store and all services initialized.
// This is the single entry point for creating the application container.
func New(opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	st := store.New()
	a := &App{
		Store:       st,
		TaskService: taskservice.NewService(st, cfg.logger),
		logger:      cfg.logger,
	}

	if cfg.demo {
		if err := a.SeedDemo(context.Background()); err != nil {
			a.logger.Error("failed to seed demo tasks", "error", err)
		}
	}

	return a
}

// Logger returns the logger the services were built with.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
// The store lives in memory, so there is nothing to release.
func (a *App) Close() error {
	return nil
}
