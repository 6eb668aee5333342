package validation

// Result carries either a valid value or the full set of field errors
type Result[T any] struct {
	value T
	err   *Error
}

// Valid wraps a value that passed validation
func Valid[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Invalid wraps a failed validation. The partially built value is kept so
// callers can inspect what was gathered.
func Invalid[T any](value T, err *Error) Result[T] {
	return Result[T]{value: value, err: err}
}

// OK reports whether validation passed
func (r Result[T]) OK() bool {
	return !r.err.HasErrors()
}

// Value returns the gathered value
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the validation report, or nil when valid
func (r Result[T]) Err() *Error {
	if r.OK() {
		return nil
	}
	return r.err
}
