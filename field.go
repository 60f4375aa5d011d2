package formkit

import (
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FormatType selects the transformation FormatPayload applies to a field.
type FormatType string

const (
	FormatString  FormatType = "string"
	FormatNumber  FormatType = "number"
	FormatFloat   FormatType = "float"
	FormatBoolean FormatType = "boolean"
	FormatDate    FormatType = "date"
	FormatRemove  FormatType = "remove"
	FormatAdd     FormatType = "add"
)

// ErrorMustMatch is the error code MatchFields manages on the second field.
const ErrorMustMatch = "mustMatch"

// Field describes an intended operation on one named field. Each helper
// reads only the attributes it needs; a nil Value or DefaultValue means
// "absent".
type Field struct {
	Name         string
	Validations  []validator.Validator
	DefaultValue any
	Value        any
	Options      *form.UpdateOptions
	FormatType   FormatType
	DateFormat   string
	MappedKey    string
}

// RemoveField names a control to detach. EmitEvent controls whether the
// removal notifies the form's listeners.
type RemoveField struct {
	Name      string
	EmitEvent bool
}
