package database

import "database/sql"

// Repository groups the data access objects that share one store handle
type Repository struct {
	Departments *DepartmentRepo
	Sellers     *SellerRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Departments: NewDepartmentRepo(db),
		Sellers:     NewSellerRepo(db),
	}
}
