package dateformat

import "errors"

var (
	// ErrInvalidValue is returned when a value cannot be interpreted as a point in time.
	ErrInvalidValue = errors.New("value is not a valid date")

	// ErrInvalidPattern is returned for empty patterns and unterminated quoted literals.
	ErrInvalidPattern = errors.New("invalid date pattern")
)
