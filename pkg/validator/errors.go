package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPattern is raised when a Pattern validator receives an expression that does not compile.
	ErrInvalidPattern = errors.New("invalid validation pattern")
)
