package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidJSON          = errors.New("failed to parse JSON request body")
	ErrNilRequest           = errors.New("nil request")
)
