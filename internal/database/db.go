// Package database handles the initialization of the SQLite store and the
// per-entity data access objects
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// InitDB opens the store at path with the connection pragmas, runs the
// schema migrations and seeds the default departments on an empty store.
// The returned handle is the only connection the application uses.
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedDefaultDepartments(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to seed departments: %w", err)
	}

	return db, nil
}

// connPragmas are applied by the driver to every new connection.
// foreign_keys is what makes deleting a referenced department fail.
var connPragmas = []string{
	"foreign_keys(1)",
	"journal_mode(WAL)",
	"busy_timeout(5000)",
}

// DSN builds the modernc sqlite data source name for path
func DSN(path string) string {
	var b strings.Builder
	b.WriteString(path)
	for i, pragma := range connPragmas {
		if i == 0 {
			b.WriteString("?")
		} else {
			b.WriteString("&")
		}
		b.WriteString("_pragma=")
		b.WriteString(pragma)
	}
	return b.String()
}

// seedDefaultDepartments inserts the stock departments if none exist
func seedDefaultDepartments(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM department").Scan(&count); err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for _, name := range []string{"Computers", "Electronics", "Fashion", "Books"} {
		if _, err := db.ExecContext(ctx, "INSERT INTO department (name) VALUES (?)", name); err != nil {
			return err
		}
	}

	slog.Info("seeded default departments")
	return nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
