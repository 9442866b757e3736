package service

import "fmt"

// ValidationError marks malformed or missing input. It is always
// user-correctable and never reaches the store: validation runs before
// any mutation is attempted. The API layer maps it to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a reference to a task id that does not exist.
// The API layer maps it to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
