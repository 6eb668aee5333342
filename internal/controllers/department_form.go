package controllers

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/validation"
)

// DepartmentFields is the widget state of the department form
type DepartmentFields struct {
	ID   string
	Name string
}

// DepartmentForm gathers, validates and persists one department
type DepartmentForm struct {
	formBase

	entity  *models.Department
	service EntityService[*models.Department]

	Fields DepartmentFields
}

// NewDepartmentForm creates an idle department form
func NewDepartmentForm(ctx context.Context, dialogs Dialogs) *DepartmentForm {
	return &DepartmentForm{
		formBase: newFormBase(ctx, dialogs, FieldName),
	}
}

func (f *DepartmentForm) Title() string {
	return "Enter Department data"
}

func (f *DepartmentForm) SetDepartment(d *models.Department) {
	f.entity = d
}

func (f *DepartmentForm) Department() *models.Department {
	return f.entity
}

func (f *DepartmentForm) SetService(svc EntityService[*models.Department]) {
	f.service = svc
}

// UpdateFormData pre-fills the widgets from the bound entity
func (f *DepartmentForm) UpdateFormData() {
	if f.entity == nil {
		panic("entity was nil")
	}
	f.Fields = DepartmentFields{Name: f.entity.Name}
	if f.entity.ID != nil {
		f.Fields.ID = fmt.Sprint(*f.entity.ID)
	}
}

// GetFormData reads the widgets into a new department
func (f *DepartmentForm) GetFormData() validation.Result[*models.Department] {
	vErr := validation.NewError("Validation error")
	d := &models.Department{
		ID:   validation.ParseOptionalInt(f.Fields.ID),
		Name: f.Fields.Name,
	}

	if validation.IsBlank(f.Fields.Name) {
		vErr.AddError(FieldName, validation.MsgRequired)
	}

	if vErr.HasErrors() {
		return validation.Invalid(d, vErr)
	}
	return validation.Valid(d)
}

// Save validates and persists the department
func (f *DepartmentForm) Save() error {
	if f.entity == nil {
		panic("entity was nil")
	}
	if f.service == nil {
		panic("service was nil")
	}

	f.state = FormSubmitting
	result := f.GetFormData()
	if !result.OK() {
		f.setErrorMessages(result.Err().Errors())
		f.state = FormValidationFailed
		return result.Err()
	}

	d := result.Value()
	if err := f.service.SaveOrUpdate(f.ctx, d); err != nil {
		f.state = FormPersistenceFailed
		f.showError(TitleSaveError, err.Error())
		return err
	}

	f.entity = d
	f.committed()
	return nil
}
