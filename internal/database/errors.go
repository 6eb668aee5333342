package database

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrIntegrity indicates the store rejected a write because it would
	// break a declared relationship, e.g. deleting a referenced department
	ErrIntegrity = errors.New("integrity violation")

	// ErrNotFound indicates no row matched the given identifier
	ErrNotFound = errors.New("record not found")
)

// classify wraps driver errors so callers can match them with errors.Is.
// Foreign key failures become ErrIntegrity; everything else is wrapped as is.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrIntegrity, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	// Without extended result codes only the primary code is reported
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "FOREIGN KEY")
}
