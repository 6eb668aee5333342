package seller

import "errors"

// Domain errors for seller service
var (
	ErrNilSeller = errors.New("seller cannot be nil")
	ErrInvalidID = errors.New("invalid seller ID")
)
