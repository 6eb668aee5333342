package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/staffdesk/internal/models"
)

// dateLayout is the storage format of seller.birth_date
const dateLayout = "2006-01-02"

const selectSeller = `
	SELECT s.id, s.name, s.email, s.birth_date, s.base_salary,
	       d.id, d.name
	FROM seller s
	LEFT JOIN department d ON d.id = s.department_id`

// SellerRepo handles all seller-related database operations.
type SellerRepo struct {
	db *sql.DB
}

// NewSellerRepo creates a seller DAO over db
func NewSellerRepo(db *sql.DB) *SellerRepo {
	return &SellerRepo{db: db}
}

// FindAll retrieves every seller with its department, ordered by name
func (r *SellerRepo) FindAll(ctx context.Context) ([]*models.Seller, error) {
	rows, err := r.db.QueryContext(ctx, selectSeller+` ORDER BY s.name`)
	if err != nil {
		return nil, classify("failed to query sellers", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	sellers := make([]*models.Seller, 0)
	for rows.Next() {
		s, err := scanSeller(rows)
		if err != nil {
			return nil, err
		}
		sellers = append(sellers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sellers: %w", err)
	}
	return sellers, nil
}

// FindByDepartment retrieves the sellers that reference a department
func (r *SellerRepo) FindByDepartment(ctx context.Context, departmentID int) ([]*models.Seller, error) {
	rows, err := r.db.QueryContext(ctx, selectSeller+` WHERE s.department_id = ? ORDER BY s.name`, departmentID)
	if err != nil {
		return nil, classify(fmt.Sprintf("failed to query sellers of department %d", departmentID), err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	sellers := make([]*models.Seller, 0)
	for rows.Next() {
		s, err := scanSeller(rows)
		if err != nil {
			return nil, err
		}
		sellers = append(sellers, s)
	}
	return sellers, rows.Err()
}

// FindByID retrieves a single seller
func (r *SellerRepo) FindByID(ctx context.Context, id int) (*models.Seller, error) {
	row := r.db.QueryRowContext(ctx, selectSeller+` WHERE s.id = ?`, id)
	s, err := scanSeller(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("seller %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Insert stores a new seller and sets its generated ID
func (r *SellerRepo) Insert(ctx context.Context, s *models.Seller) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO seller (name, email, birth_date, base_salary, department_id) VALUES (?, ?, ?, ?, ?)`,
		s.Name, s.Email, formatDate(s.BirthDate), s.BaseSalary, departmentID(s.Department),
	)
	if err != nil {
		return classify(fmt.Sprintf("failed to insert seller '%s'", s.Name), err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get seller ID after insert: %w", err)
	}
	s.ID = models.IntPtr(int(id))
	return nil
}

// Update overwrites every column of an existing seller
func (r *SellerRepo) Update(ctx context.Context, s *models.Seller) error {
	if s.ID == nil {
		return fmt.Errorf("update seller without id: %w", ErrNotFound)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE seller SET name = ?, email = ?, birth_date = ?, base_salary = ?, department_id = ? WHERE id = ?`,
		s.Name, s.Email, formatDate(s.BirthDate), s.BaseSalary, departmentID(s.Department), *s.ID,
	)
	if err != nil {
		return classify(fmt.Sprintf("failed to update seller %d", *s.ID), err)
	}
	return requireAffected(result, fmt.Sprintf("seller %d", *s.ID))
}

// DeleteByID removes a seller
func (r *SellerRepo) DeleteByID(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM seller WHERE id = ?`, id)
	if err != nil {
		return classify(fmt.Sprintf("failed to delete seller %d", id), err)
	}
	return requireAffected(result, fmt.Sprintf("seller %d", id))
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSeller(row scanner) (*models.Seller, error) {
	var (
		id        int
		birthDate string
		salary    decimal.NullDecimal
		deptID    sql.NullInt64
		deptName  sql.NullString
	)
	s := &models.Seller{}
	if err := row.Scan(&id, &s.Name, &s.Email, &birthDate, &salary, &deptID, &deptName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan seller: %w", err)
	}

	s.ID = &id
	s.BaseSalary = salary
	s.BirthDate = parseDate(birthDate)
	if deptID.Valid {
		s.Department = &models.Department{
			ID:   nullInt64ToPtr(deptID),
			Name: NullStringToString(deptName),
		}
	}
	return s, nil
}

// formatDate renders the calendar date of t in its own location
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// parseDate reads a stored date as local start of day. Malformed values
// yield the zero time.
func parseDate(s string) time.Time {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		log.Printf("invalid stored birth date %q: %v", s, err)
		return time.Time{}
	}
	return t
}

func departmentID(d *models.Department) any {
	if d == nil || d.ID == nil {
		return nil
	}
	return *d.ID
}
