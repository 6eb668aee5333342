// Package seller holds all cli commands related to sellers
//
// e.g., staffdesk seller ...
package seller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/cli"
	"github.com/thenoetrevino/staffdesk/internal/cli/styles"
	"github.com/thenoetrevino/staffdesk/internal/controllers"
	"github.com/thenoetrevino/staffdesk/internal/database"
	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/tui/renderers"
)

// SellerCmd returns the seller parent command
func SellerCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seller",
		Short: "Manage sellers",
	}

	cmd.AddCommand(ListCmd(open))
	cmd.AddCommand(CreateCmd(open))
	cmd.AddCommand(UpdateCmd(open))
	cmd.AddCommand(DeleteCmd(open))

	return cmd
}

type session struct {
	dialogs *cli.Dialogs
	rows    *cli.Rows[*models.Seller]
	capture *cli.FormCapture
	list    *controllers.ListController[*models.Seller]
}

func newSession(c *cli.CLI, dialogs *cli.Dialogs) *session {
	ctx := c.Context()
	services := c.App.Services()
	s := &session{
		dialogs: dialogs,
		rows:    &cli.Rows[*models.Seller]{},
		capture: &cli.FormCapture{},
	}
	s.list = controllers.NewListController(
		ctx, s.rows, dialogs, s.capture,
		controllers.NewSeller,
		controllers.SellerFormFactory(ctx, dialogs, services),
		controllers.WithListLogger[*models.Seller](c.App.Logger()),
	)
	s.list.SetService(services.Sellers)
	return s
}

// find loads the rows and returns the one with id
func (s *session) find(id int) (*models.Seller, error) {
	if err := s.list.UpdateTableView(); err != nil {
		return nil, err
	}
	for _, row := range s.rows.Items {
		if row.GetID() == id {
			return row, nil
		}
	}
	return nil, fmt.Errorf("seller %d: %w", id, database.ErrNotFound)
}

func (s *session) form() (*controllers.SellerForm, error) {
	form, ok := s.capture.Form.(*controllers.SellerForm)
	if !ok {
		if err := s.dialogs.LastError(); err != nil {
			return nil, err
		}
		return nil, errors.New("seller form could not be opened")
	}
	return form, nil
}

// fieldFlags are the flags that map onto seller form fields
var fieldFlags = []string{"name", "email", "birth-date", "salary", "department"}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Seller name")
	cmd.Flags().String("email", "", "Seller email")
	cmd.Flags().String("birth-date", "", "Birth date (dd/mm/yyyy or yyyy-mm-dd)")
	cmd.Flags().String("salary", "", "Base salary")
	cmd.Flags().Int("department", 0, "Department ID")
}

// applyFlags copies the flags the user set into the form. Unset flags keep
// the value the form was pre-filled with.
func applyFlags(cmd *cobra.Command, form *controllers.SellerForm) error {
	flags := cmd.Flags()
	for _, name := range fieldFlags {
		if !flags.Changed(name) {
			continue
		}
		switch name {
		case "name":
			form.Fields.Name, _ = flags.GetString(name)
		case "email":
			form.Fields.Email, _ = flags.GetString(name)
		case "salary":
			form.Fields.BaseSalary, _ = flags.GetString(name)
		case "birth-date":
			raw, _ := flags.GetString(name)
			date, err := cli.ParseDate(raw)
			if err != nil {
				return err
			}
			form.Fields.BirthDate = &date
		case "department":
			id, _ := flags.GetInt(name)
			department, err := pickDepartment(form.Departments(), id)
			if err != nil {
				return err
			}
			form.Fields.Department = department
		}
	}
	return nil
}

func pickDepartment(departments []*models.Department, id int) (*models.Department, error) {
	for _, d := range departments {
		if d.GetID() == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("department %d: %w", id, database.ErrNotFound)
}

func renderTable(rows []*models.Seller) string {
	return renderers.RenderTable(
		renderers.WithoutActions(renderers.SellerColumns()),
		renderers.SellerCells,
		rows, renderers.NoSelection, "No sellers found",
	)
}

// renderCard renders one seller for human-readable output
func renderCard(heading string, s *models.Seller) string {
	salary := ""
	if s.BaseSalary.Valid {
		salary = s.BaseSalary.Decimal.StringFixed(2)
	}

	lines := []string{
		styles.TitleStyle.Render(heading),
		"",
		styles.Field("ID", fmt.Sprint(s.GetID())),
		styles.Field("Name", s.Name),
		styles.Field("Email", s.Email),
		styles.Field("Birth Date", s.BirthDate.Format(renderers.DateLayout)),
		styles.Field("Base Salary", salary),
		styles.Field("Department", s.DepartmentName()),
	}
	return styles.RenderCard(strings.Join(lines, "\n"))
}
