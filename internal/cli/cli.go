package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/staffdesk/internal/app"
	"github.com/thenoetrevino/staffdesk/internal/config"
	"github.com/thenoetrevino/staffdesk/internal/database"
	"github.com/thenoetrevino/staffdesk/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context

	// owned is set when the CLI opened the store itself and must close it
	owned bool
}

// Opener builds the CLI context a command runs against. Production commands
// use NewCLI; tests hand in a CLI over an in-memory store.
type Opener func(ctx context.Context) (*CLI, error)

// NewCLI opens the configured store and builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg.DataDir(), cfg.Level()); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c := FromApp(ctx, app.New(db, app.WithLogger(slog.Default())))
	c.owned = true
	return c, nil
}

// FromApp wraps an application container owned by the caller. Close leaves
// its store open.
func FromApp(ctx context.Context, a *app.App) *CLI {
	return &CLI{App: a, ctx: ctx}
}

// Context returns the context commands should pass to services
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
