package formkit

import (
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FieldErrorMessage returns the detail stored under code on c.
func FieldErrorMessage(c form.ErrorReporter, code string) (any, bool) {
	if isNil(c) {
		return nil, false
	}
	return c.GetError(code)
}

// IsValidWithMarks reports whether every requested mark holds on c.
// It is false for a nil target or an empty mark list.
func IsValidWithMarks(c form.Marker, marks ...form.Mark) bool {
	if isNil(c) || len(marks) == 0 {
		return false
	}
	seen := make(map[form.Mark]struct{}, len(marks))
	for _, m := range marks {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		if !m.Holds(c) {
			return false
		}
	}
	return true
}

// IsFormValid returns the aggregate validity of f. A nil form is not valid.
func IsFormValid(f form.Form) bool {
	if missing(f) {
		return false
	}
	return f.Valid()
}

// FieldErrorMap maps each field that currently has errors to a copy of its
// error set. The result is never nil.
func FieldErrorMap(f form.Form) map[string]map[string]any {
	out := make(map[string]map[string]any)
	if missing(f) {
		return out
	}
	for _, name := range f.Names() {
		c, ok := f.Get(name)
		if !ok {
			continue
		}
		if errs := c.Errors(); len(errs) > 0 {
			out[name] = errs
		}
	}
	return out
}

// Validate returns the form's errors as validator.ValidationErrors, or nil
// for a valid form. Forms that cannot describe their errors yield
// validator.ErrValidationFailed when invalid.
func Validate(f form.Form) error {
	if missing(f) {
		return nil
	}
	if reporter, ok := f.(interface{ Err() error }); ok {
		return reporter.Err()
	}
	if !f.Valid() {
		return validator.ErrValidationFailed
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
