package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seller is a salesperson record.
//
// BirthDate holds the local start of day of the birth date. BaseSalary is
// invalid when the salary is unknown. Department is a shared reference and
// may be nil.
type Seller struct {
	ID         *int                `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	BirthDate  time.Time           `json:"birth_date"`
	BaseSalary decimal.NullDecimal `json:"base_salary"`
	Department *Department         `json:"department"`
}

// IsNew reports whether the seller has not been stored yet
func (s *Seller) IsNew() bool {
	return s.ID == nil
}

// GetID returns the identifier, or 0 for a new seller
func (s *Seller) GetID() int {
	if s.ID == nil {
		return 0
	}
	return *s.ID
}

// DepartmentName returns the name of the referenced department or ""
func (s *Seller) DepartmentName() string {
	if s.Department == nil {
		return ""
	}
	return s.Department.Name
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
