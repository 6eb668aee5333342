// Package testutil provides shared helpers for tests that need a store
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/staffdesk/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema.
// The pool is limited to one connection since every new connection to
// ":memory:" would see its own empty database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// CreateTestDepartment creates a department and returns its ID
func CreateTestDepartment(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(), "INSERT INTO department (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to create test department: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CreateTestSeller creates a seller in the given department (0 for none)
// and returns its ID
func CreateTestSeller(t *testing.T, db *sql.DB, name string, departmentID int) int {
	t.Helper()
	var dept any
	if departmentID > 0 {
		dept = departmentID
	}
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO seller (name, email, birth_date, base_salary, department_id) VALUES (?, ?, ?, ?, ?)",
		name, name+"@example.com", "1990-04-21", 3000.0, dept)
	if err != nil {
		t.Fatalf("Failed to create test seller: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// Date returns local start of day for the given calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
