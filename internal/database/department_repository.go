package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/thenoetrevino/staffdesk/internal/models"
)

// DepartmentRepo handles all department-related database operations.
type DepartmentRepo struct {
	db *sql.DB
}

// NewDepartmentRepo creates a department DAO over db
func NewDepartmentRepo(db *sql.DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

// FindAll retrieves every department ordered by name
func (r *DepartmentRepo) FindAll(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM department ORDER BY name`)
	if err != nil {
		return nil, classify("failed to query departments", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		var id int
		d := &models.Department{}
		if err := rows.Scan(&id, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		d.ID = &id
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}
	return departments, nil
}

// FindByID retrieves a single department
func (r *DepartmentRepo) FindByID(ctx context.Context, id int) (*models.Department, error) {
	d := &models.Department{ID: models.IntPtr(id)}
	err := r.db.QueryRowContext(ctx, `SELECT name FROM department WHERE id = ?`, id).Scan(&d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("department %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, classify(fmt.Sprintf("failed to get department %d", id), err)
	}
	return d, nil
}

// Insert stores a new department and sets its generated ID
func (r *DepartmentRepo) Insert(ctx context.Context, d *models.Department) error {
	result, err := r.db.ExecContext(ctx, `INSERT INTO department (name) VALUES (?)`, d.Name)
	if err != nil {
		return classify(fmt.Sprintf("failed to insert department '%s'", d.Name), err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get department ID after insert: %w", err)
	}
	d.ID = models.IntPtr(int(id))
	return nil
}

// Update overwrites the stored name of an existing department
func (r *DepartmentRepo) Update(ctx context.Context, d *models.Department) error {
	if d.ID == nil {
		return fmt.Errorf("update department without id: %w", ErrNotFound)
	}
	result, err := r.db.ExecContext(ctx, `UPDATE department SET name = ? WHERE id = ?`, d.Name, *d.ID)
	if err != nil {
		return classify(fmt.Sprintf("failed to update department %d", *d.ID), err)
	}
	return requireAffected(result, fmt.Sprintf("department %d", *d.ID))
}

// DeleteByID removes a department. Fails with ErrIntegrity while sellers
// still reference it.
func (r *DepartmentRepo) DeleteByID(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM department WHERE id = ?`, id)
	if err != nil {
		return classify(fmt.Sprintf("failed to delete department %d", id), err)
	}
	return requireAffected(result, fmt.Sprintf("department %d", id))
}
