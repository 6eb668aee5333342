// Package department holds all cli commands related to departments
//
// e.g., staffdesk department ...
package department

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
	"github.com/thenoetrevino/staffdesk/internal/controllers"
	"github.com/thenoetrevino/staffdesk/internal/database"
	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/tui/renderers"
)

// DepartmentCmd returns the department parent command
func DepartmentCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "department",
		Aliases: []string{"dept"},
		Short:   "Manage departments",
	}

	cmd.AddCommand(ListCmd(open))
	cmd.AddCommand(CreateCmd(open))
	cmd.AddCommand(UpdateCmd(open))
	cmd.AddCommand(DeleteCmd(open))

	return cmd
}

// session is one command's controller wiring
type session struct {
	dialogs *cli.Dialogs
	rows    *cli.Rows[*models.Department]
	capture *cli.FormCapture
	list    *controllers.ListController[*models.Department]
}

func newSession(c *cli.CLI, dialogs *cli.Dialogs) *session {
	ctx := c.Context()
	services := c.App.Services()
	s := &session{
		dialogs: dialogs,
		rows:    &cli.Rows[*models.Department]{},
		capture: &cli.FormCapture{},
	}
	s.list = controllers.NewListController(
		ctx, s.rows, dialogs, s.capture,
		controllers.NewDepartment,
		controllers.DepartmentFormFactory(ctx, dialogs, services),
		controllers.WithListLogger[*models.Department](c.App.Logger()),
	)
	s.list.SetService(services.Departments)
	return s
}

// find loads the rows and returns the one with id
func (s *session) find(id int) (*models.Department, error) {
	if err := s.list.UpdateTableView(); err != nil {
		return nil, err
	}
	for _, d := range s.rows.Items {
		if d.GetID() == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("department %d: %w", id, database.ErrNotFound)
}

// form returns the form the last OnNew or OnEdit opened
func (s *session) form() (*controllers.DepartmentForm, error) {
	form, ok := s.capture.Form.(*controllers.DepartmentForm)
	if !ok {
		if err := s.dialogs.LastError(); err != nil {
			return nil, err
		}
		return nil, errors.New("department form could not be opened")
	}
	return form, nil
}

func renderTable(rows []*models.Department) string {
	return renderers.RenderTable(
		renderers.WithoutActions(renderers.DepartmentColumns()),
		renderers.DepartmentCells,
		rows, renderers.NoSelection, "No departments found",
	)
}
