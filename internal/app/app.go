package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/staffdesk/internal/controllers"
	"github.com/thenoetrevino/staffdesk/internal/database"
	departmentservice "github.com/thenoetrevino/staffdesk/internal/services/department"
	sellerservice "github.com/thenoetrevino/staffdesk/internal/services/seller"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db   *sql.DB
	repo *database.Repository

	logger *slog.Logger

	// Service layer
	DepartmentService departmentservice.Service
	SellerService     sellerservice.Service
}

// New creates a new App with all services initialized over an opened store
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		db:                db,
		repo:              repo,
		logger:            cfg.logger,
		DepartmentService: departmentservice.NewService(repo.Departments, cfg.logger),
		SellerService:     sellerservice.NewService(repo.Sellers, cfg.logger),
	}
}

// Services returns the services in the shape the controllers consume
func (a *App) Services() controllers.Services {
	return controllers.Services{
		Departments: a.DepartmentService,
		Sellers:     a.SellerService,
	}
}

// Logger returns the logger the services were built with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the store handle
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
