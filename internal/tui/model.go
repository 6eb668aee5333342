package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/staffdesk/internal/app"
	"github.com/thenoetrevino/staffdesk/internal/config"
	"github.com/thenoetrevino/staffdesk/internal/controllers"
	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/tui/components"
	"github.com/thenoetrevino/staffdesk/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState       *state.UIState
	Notifications *state.NotificationState
	Dialogs       *state.DialogState
	Editor        *Editor

	Departments *state.TableState[*models.Department]
	Sellers     *state.TableState[*models.Seller]

	surface        *surface
	departmentList *controllers.ListController[*models.Department]
	sellerList     *controllers.ListController[*models.Seller]
}

// InitialModel creates the TUI model and loads both tables
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = &config.Config{
			KeyMappings: config.DefaultKeyMappings(),
			ColorScheme: config.DefaultColorScheme(),
		}
	}
	components.InitStyles(cfg.ColorScheme)

	uiState := state.NewUIState()
	notifications := state.NewNotificationState()
	dialogs := state.NewDialogState()
	editor := NewEditor(notifications)
	surf := &surface{ui: uiState, dialogs: dialogs, editor: editor}

	services := application.Services()
	logger := application.Logger()

	departments := state.NewTableState[*models.Department]()
	departmentList := controllers.NewListController(
		ctx, departments, surf, surf,
		controllers.NewDepartment,
		controllers.DepartmentFormFactory(ctx, surf, services),
		controllers.WithListLogger[*models.Department](logger),
	)
	departmentList.SetService(services.Departments)

	sellers := state.NewTableState[*models.Seller]()
	sellerList := controllers.NewListController(
		ctx, sellers, surf, surf,
		controllers.NewSeller,
		controllers.SellerFormFactory(ctx, surf, services),
		controllers.WithListLogger[*models.Seller](logger),
	)
	sellerList.SetService(services.Sellers)

	m := Model{
		ctx:            ctx,
		App:            application,
		Config:         cfg,
		UiState:        uiState,
		Notifications:  notifications,
		Dialogs:        dialogs,
		Editor:         editor,
		Departments:    departments,
		Sellers:        sellers,
		surface:        surf,
		departmentList: departmentList,
		sellerList:     sellerList,
	}

	m.refreshAll()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// refreshAll reloads both tables
func (m Model) refreshAll() {
	if err := m.departmentList.UpdateTableView(); err != nil {
		return
	}
	_ = m.sellerList.UpdateTableView()
}

// refreshActive reloads the table of the active tab
func (m Model) refreshActive() {
	if m.UiState.Tab() == state.SellersTab {
		_ = m.sellerList.UpdateTableView()
		return
	}
	_ = m.departmentList.UpdateTableView()
}
