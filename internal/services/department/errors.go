package department

import "errors"

// Domain errors for department service
var (
	ErrNilDepartment = errors.New("department cannot be nil")
	ErrInvalidID     = errors.New("invalid department ID")
)
