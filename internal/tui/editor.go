package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/staffdesk/internal/controllers"
	"github.com/thenoetrevino/staffdesk/internal/events"
	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/tui/forms"
	"github.com/thenoetrevino/staffdesk/internal/tui/renderers"
	"github.com/thenoetrevino/staffdesk/internal/tui/state"
)

// Widget limits for form text fields
const (
	sellerNameLimit     = 70
	sellerEmailLimit    = 60
	departmentNameLimit = 30
)

const fieldDepartment = "department"

// Editor binds the open form controller to its on-screen widgets. Widget
// values are copied into the controller's fields on every save attempt and
// the controller's error labels are copied back.
type Editor struct {
	form    controllers.Form
	widgets *forms.Form

	id     string
	name   string
	email  string
	salary string

	birth       *forms.DateInput
	department  *forms.Select
	departments []*models.Department

	notifications *state.NotificationState
}

// NewEditor creates an editor with no open form
func NewEditor(notifications *state.NotificationState) *Editor {
	return &Editor{notifications: notifications}
}

// Open builds the widgets for a seller or department form
func (e *Editor) Open(form controllers.Form) {
	e.form = form

	switch f := form.(type) {
	case *controllers.SellerForm:
		e.openSeller(f)
	case *controllers.DepartmentForm:
		e.openDepartment(f)
	default:
		e.widgets = forms.NewForm()
	}

	form.Subscribe(events.DataChangeFunc(func() {
		e.notifications.Add(state.LevelInfo, savedMessage(form.Title()))
	}))
}

// savedMessage turns "Enter Seller data" into "Seller saved"
func savedMessage(title string) string {
	noun := strings.TrimSuffix(strings.TrimPrefix(title, "Enter "), " data")
	return noun + " saved"
}

func (e *Editor) openSeller(f *controllers.SellerForm) {
	e.id = f.Fields.ID
	e.name = f.Fields.Name
	e.email = f.Fields.Email
	e.salary = f.Fields.BaseSalary
	e.departments = f.Departments()

	options := make([]forms.Option, 0, len(e.departments))
	for _, d := range e.departments {
		options = append(options, forms.Option{Label: d.Name, Value: d.GetID()})
	}
	selected := 0
	if f.Fields.Department != nil {
		selected = f.Fields.Department.GetID()
	}

	e.birth = forms.NewDateInput(controllers.FieldBirthDate, "Birth Date", renderers.DateLayout, f.Fields.BirthDate)
	e.department = forms.NewSelect(fieldDepartment, "Department", options, selected)
	e.widgets = forms.NewForm(
		forms.NewTextInput(controllers.FieldName, "Name", "Seller name", sellerNameLimit, &e.name),
		forms.NewTextInput(controllers.FieldEmail, "Email", "name@example.com", sellerEmailLimit, &e.email),
		e.birth,
		forms.NewTextInput(controllers.FieldBaseSalary, "Base Salary", "0.00", 0, &e.salary),
		e.department,
	)
}

func (e *Editor) openDepartment(f *controllers.DepartmentForm) {
	e.id = f.Fields.ID
	e.name = f.Fields.Name
	e.birth = nil
	e.department = nil
	e.departments = nil
	e.widgets = forms.NewForm(
		forms.NewTextInput(controllers.FieldName, "Name", "Department name", departmentNameLimit, &e.name),
	)
}

// Focus focuses the first widget
func (e *Editor) Focus() tea.Cmd {
	if e.widgets == nil {
		return nil
	}
	return e.widgets.Init()
}

// Update forwards a message to the focused widget
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	if e.widgets == nil {
		return nil
	}
	var cmd tea.Cmd
	e.widgets, cmd = e.widgets.Update(msg)
	return cmd
}

// Aborted reports whether the widgets asked to close (esc)
func (e *Editor) Aborted() bool {
	return e.widgets != nil && e.widgets.State() == forms.StateAborted
}

// Save copies the widget values into the controller and saves
func (e *Editor) Save() error {
	switch f := e.form.(type) {
	case *controllers.SellerForm:
		f.Fields = controllers.SellerFields{
			ID:         e.id,
			Name:       e.name,
			Email:      e.email,
			BirthDate:  e.birth.Date(),
			BaseSalary: e.salary,
		}
		if i := e.department.Selected(); i >= 0 && i < len(e.departments) {
			f.Fields.Department = e.departments[i]
		}
		err := f.Save()
		e.widgets.SetErrors(func(key string) string {
			msg := f.ErrorLabel(key)
			if key == controllers.FieldBirthDate && msg != "" && e.birth.Invalid() {
				return "Invalid date (dd/mm/yyyy)"
			}
			return msg
		})
		return err

	case *controllers.DepartmentForm:
		f.Fields = controllers.DepartmentFields{ID: e.id, Name: e.name}
		err := f.Save()
		e.widgets.SetErrors(f.ErrorLabel)
		return err
	}
	return nil
}

// Cancel closes the form without saving
func (e *Editor) Cancel() {
	if e.form != nil {
		e.form.Cancel()
	}
}

// IsOpen reports whether a form is being edited
func (e *Editor) IsOpen() bool {
	return e.form != nil && e.form.IsOpen()
}

// Close drops the form and its widgets
func (e *Editor) Close() {
	e.form = nil
	e.widgets = nil
}

// Form returns the open form controller
func (e *Editor) Form() controllers.Form {
	return e.form
}

// IsNew reports whether the open form creates a new entity
func (e *Editor) IsNew() bool {
	return e.id == ""
}

// View renders the open form
func (e *Editor) View() string {
	if e.form == nil || e.widgets == nil {
		return ""
	}

	id := "(new)"
	if e.id != "" {
		id = e.id
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Id: %s\n\n", id))
	b.WriteString(e.widgets.View())
	return b.String()
}
