package formkit

import "errors"

var (
	// ErrDateFormat is returned when a date field cannot be formatted.
	ErrDateFormat = errors.New("unable to format date")

	// ErrDecodePayload is returned when a payload cannot be decoded into the target.
	ErrDecodePayload = errors.New("unable to decode payload")

	// ErrInvalidConfig is returned by NewFromConfig for unusable settings.
	ErrInvalidConfig = errors.New("invalid formkit configuration")
)
