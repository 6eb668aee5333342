package renderers

import (
	"strconv"

	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/tui/theme"
)

// DateLayout is how birth dates are shown and typed
const DateLayout = "02/01/2006"

// Field names shared by the column declarations and their renderers
const (
	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldBirthDate  = "birthDate"
	FieldBaseSalary = "baseSalary"
	FieldDepartment = "department"
	FieldEdit       = "edit"
	FieldRemove     = "remove"
)

// DepartmentColumns declares the department table
func DepartmentColumns() []Column {
	return []Column{
		{Field: FieldID, Title: "Id", Width: 4},
		{Field: FieldName, Title: "Name", Width: 30},
		{Field: FieldEdit, Title: "", Width: 6, Color: theme.Edit, Action: true},
		{Field: FieldRemove, Title: "", Width: 8, Color: theme.Delete, Action: true},
	}
}

// DepartmentCells extracts department cells
var DepartmentCells = CellRenderers[*models.Department]{
	FieldID:     func(d *models.Department) string { return formatID(d.ID) },
	FieldName:   func(d *models.Department) string { return d.Name },
	FieldEdit:   func(*models.Department) string { return "[edit]" },
	FieldRemove: func(*models.Department) string { return "[remove]" },
}

// SellerColumns declares the seller table
func SellerColumns() []Column {
	return []Column{
		{Field: FieldID, Title: "Id", Width: 4},
		{Field: FieldName, Title: "Name", Width: 20},
		{Field: FieldEmail, Title: "Email", Width: 24},
		{Field: FieldBirthDate, Title: "Birth Date", Width: 10},
		{Field: FieldBaseSalary, Title: "Base Salary", Width: 11},
		{Field: FieldDepartment, Title: "Department", Width: 14},
		{Field: FieldEdit, Title: "", Width: 6, Color: theme.Edit, Action: true},
		{Field: FieldRemove, Title: "", Width: 8, Color: theme.Delete, Action: true},
	}
}

// SellerCells extracts seller cells: dates as dd/mm/yyyy, salary with two
// decimals
var SellerCells = CellRenderers[*models.Seller]{
	FieldID:    func(s *models.Seller) string { return formatID(s.ID) },
	FieldName:  func(s *models.Seller) string { return s.Name },
	FieldEmail: func(s *models.Seller) string { return s.Email },
	FieldBirthDate: func(s *models.Seller) string {
		if s.BirthDate.IsZero() {
			return ""
		}
		return s.BirthDate.Format(DateLayout)
	},
	FieldBaseSalary: func(s *models.Seller) string {
		if !s.BaseSalary.Valid {
			return ""
		}
		return s.BaseSalary.Decimal.StringFixed(2)
	},
	FieldDepartment: func(s *models.Seller) string { return s.DepartmentName() },
	FieldEdit:       func(*models.Seller) string { return "[edit]" },
	FieldRemove:     func(*models.Seller) string { return "[remove]" },
}

func formatID(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}
