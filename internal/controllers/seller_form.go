package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/validation"
)

// Seller form field keys used in validation reports and error labels
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldBirthDate  = "birthDate"
	FieldBaseSalary = "baseSalary"
)

// SellerFields is the widget state of the seller form
type SellerFields struct {
	ID         string
	Name       string
	Email      string
	BirthDate  *time.Time
	BaseSalary string
	Department *models.Department
}

// SellerForm gathers, validates and persists one seller
type SellerForm struct {
	formBase

	entity            *models.Seller
	service           EntityService[*models.Seller]
	departmentService EntityService[*models.Department]
	departments       []*models.Department

	// Fields is written by the surface before Save is called
	Fields SellerFields
}

// NewSellerForm creates an idle seller form bound to a dialog surface
func NewSellerForm(ctx context.Context, dialogs Dialogs) *SellerForm {
	return &SellerForm{
		formBase: newFormBase(ctx, dialogs, FieldName, FieldEmail, FieldBirthDate, FieldBaseSalary),
	}
}

// Title returns the dialog title
func (f *SellerForm) Title() string {
	return "Enter Seller data"
}

// SetSeller sets the entity being created or edited
func (f *SellerForm) SetSeller(s *models.Seller) {
	f.entity = s
}

// Seller returns the entity bound to the form. After a successful save it
// carries the identifier assigned by the store.
func (f *SellerForm) Seller() *models.Seller {
	return f.entity
}

// SetServices injects the seller service and the department service used to
// fill the department selection
func (f *SellerForm) SetServices(svc EntityService[*models.Seller], departments EntityService[*models.Department]) {
	f.service = svc
	f.departmentService = departments
}

// LoadAssociatedObjects loads the departments offered in the selection
func (f *SellerForm) LoadAssociatedObjects() error {
	if f.departmentService == nil {
		panic("department service was nil")
	}
	departments, err := f.departmentService.FindAll(f.ctx)
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}
	f.departments = departments
	return nil
}

// Departments returns the departments offered in the selection
func (f *SellerForm) Departments() []*models.Department {
	return f.departments
}

// UpdateFormData pre-fills the widgets from the bound entity
func (f *SellerForm) UpdateFormData() {
	if f.entity == nil {
		panic("entity was nil")
	}
	s := f.entity

	f.Fields = SellerFields{
		Name:  s.Name,
		Email: s.Email,
	}
	if s.ID != nil {
		f.Fields.ID = fmt.Sprint(*s.ID)
	}
	if !s.BirthDate.IsZero() {
		d := s.BirthDate
		f.Fields.BirthDate = &d
	}
	if s.BaseSalary.Valid {
		f.Fields.BaseSalary = s.BaseSalary.Decimal.StringFixed(2)
	}

	f.Fields.Department = s.Department
	if f.Fields.Department == nil && len(f.departments) > 0 {
		f.Fields.Department = f.departments[0]
	}
}

// GetFormData reads the widgets into a new seller, collecting every
// violation in one pass
func (f *SellerForm) GetFormData() validation.Result[*models.Seller] {
	vErr := validation.NewError("Validation error")
	s := &models.Seller{
		ID:         validation.ParseOptionalInt(f.Fields.ID),
		Name:       f.Fields.Name,
		Email:      f.Fields.Email,
		Department: f.Fields.Department,
	}

	if validation.IsBlank(f.Fields.Name) {
		vErr.AddError(FieldName, validation.MsgRequired)
	}
	if validation.IsBlank(f.Fields.Email) {
		vErr.AddError(FieldEmail, validation.MsgRequired)
	}

	if f.Fields.BirthDate == nil {
		vErr.AddError(FieldBirthDate, validation.MsgRequired)
	} else {
		y, m, d := f.Fields.BirthDate.Date()
		s.BirthDate = time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	if validation.IsBlank(f.Fields.BaseSalary) {
		vErr.AddError(FieldBaseSalary, validation.MsgRequired)
	} else {
		s.BaseSalary = validation.ParseOptionalDecimal(f.Fields.BaseSalary)
		if !s.BaseSalary.Valid {
			vErr.AddError(FieldBaseSalary, validation.MsgInvalidNumber)
		}
	}

	if vErr.HasErrors() {
		return validation.Invalid(s, vErr)
	}
	return validation.Valid(s)
}

// Save validates the widgets and persists the seller. A validation report
// or store error is returned and the form stays open; on success every
// listener is notified and the form closes.
func (f *SellerForm) Save() error {
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

	s := result.Value()
	if err := f.service.SaveOrUpdate(f.ctx, s); err != nil {
		f.state = FormPersistenceFailed
		f.showError(TitleSaveError, err.Error())
		return err
	}

	f.entity = s
	f.committed()
	return nil
}
