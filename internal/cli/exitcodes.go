package cli

import (
	"errors"

	"github.com/thenoetrevino/staffdesk/internal/database"
	"github.com/thenoetrevino/staffdesk/internal/validation"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: Database errors or any error that doesn't fit the specific
	// categories below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Unknown flags, missing required flags or unparsable flag
	// values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Seller or department ID that doesn't exist.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Form fields that fail validation (empty name, bad salary).
	ExitValidation = 5

	// ExitIntegrity indicates the store refused a change that would break a
	// relationship, such as deleting a department sellers still reference.
	ExitIntegrity = 6
)

// ExitError carries the process exit code for a failed command
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return ExitValidation
	case errors.Is(err, database.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, database.ErrIntegrity):
		return ExitIntegrity
	default:
		return ExitGeneral
	}
}

// ErrorCode returns the machine-readable code printed in JSON errors
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitIntegrity:
		return "INTEGRITY_ERROR"
	default:
		return "ERROR"
	}
}
