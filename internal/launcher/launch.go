package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/staffdesk/internal/app"
	"github.com/thenoetrevino/staffdesk/internal/config"
	"github.com/thenoetrevino/staffdesk/internal/database"
	"github.com/thenoetrevino/staffdesk/internal/logging"
	"github.com/thenoetrevino/staffdesk/internal/tui/core"
)

// Launch starts the TUI application
func Launch() error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logging goes to a file; the terminal belongs to the TUI
	if err := logging.Init(cfg.DataDir(), cfg.Level()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithLogger(slog.Default()))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("tui exited")
	return nil
}
