package formdef

import "errors"

var (
	ErrInvalidDefinition = errors.New("invalid form definition")
	ErrUnknownRule       = errors.New("unknown validation rule")
	ErrInvalidRuleValue  = errors.New("invalid validation rule value")
)
