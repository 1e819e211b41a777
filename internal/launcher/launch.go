package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/tui"
)

// shutdownGrace is how long Launch waits for the program to exit after a signal
const shutdownGrace = 2 * time.Second

// Options configures a TUI session.
type Options struct {
	Config *config.Config
	Logger *slog.Logger

	// StartRoute overrides Config.StartRoute when set
	StartRoute string

	// Demo seeds the board with demo tasks
	Demo bool
}

// Launch starts the TUI application and blocks until it exits or the
// process receives SIGINT/SIGTERM.
func Launch(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	appOpts := []app.Option{app.WithLogger(logger)}
	if opts.Demo {
		appOpts = append(appOpts, app.WithDemoData())
	}
	application := app.New(appOpts...)
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("error closing app", "error", err)
		}
	}()

	start := opts.StartRoute
	if start == "" {
		start = opts.Config.StartRoute
	}

	model, err := tui.InitialModel(ctx, application, opts.Config, start)
	if err != nil {
		return fmt.Errorf("failed to initialize tui: %w", err)
	}

	logger.Info("starting tablero", "route", model.Router.Current().Path, "demo", opts.Demo)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			logger.Warn("program did not exit in time")
		}
	}

	logger.Info("tablero stopped", "tasks_on_board", application.Store.Len())
	return nil
}
