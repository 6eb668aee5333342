package controllers

import (
	"context"

	"github.com/thenoetrevino/staffdesk/internal/models"
)

// Services bundles the two entity services the forms need
type Services struct {
	Departments EntityService[*models.Department]
	Sellers     EntityService[*models.Seller]
}

// SellerFormFactory returns a FormFactory that builds loaded, pre-filled
// seller forms
func SellerFormFactory(ctx context.Context, dialogs Dialogs, svc Services) FormFactory[*models.Seller] {
	return func(s *models.Seller) (Form, error) {
		form := NewSellerForm(ctx, dialogs)
		form.SetSeller(s)
		form.SetServices(svc.Sellers, svc.Departments)
		if err := form.LoadAssociatedObjects(); err != nil {
			return nil, err
		}
		form.UpdateFormData()
		return form, nil
	}
}

// DepartmentFormFactory returns a FormFactory for department forms
func DepartmentFormFactory(ctx context.Context, dialogs Dialogs, svc Services) FormFactory[*models.Department] {
	return func(d *models.Department) (Form, error) {
		form := NewDepartmentForm(ctx, dialogs)
		form.SetDepartment(d)
		form.SetService(svc.Departments)
		form.UpdateFormData()
		return form, nil
	}
}

// NewSeller constructs the empty seller passed to OnNew
func NewSeller() *models.Seller { return &models.Seller{} }

// NewDepartment constructs the empty department passed to OnNew
func NewDepartment() *models.Department { return &models.Department{} }
