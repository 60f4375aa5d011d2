package formkit

import (
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// SetValidations replaces the validators of every named field that has a
// non-empty Validations list and revalidates it.
func (s *Service) SetValidations(f form.Form, fields []Field) {
	const op = "set_validations"
	if missing(f) {
		return
	}
	for _, field := range fields {
		c, ok := f.Get(field.Name)
		if !ok {
			s.skip(op, f, field.Name, "not found")
			continue
		}
		if len(field.Validations) == 0 {
			s.skip(op, f, field.Name, "no validations")
			continue
		}
		c.SetValidators(field.Validations...)
		c.UpdateValueAndValidity()
	}
}

// RemoveValidations clears errors and validators of every named field and
// sets its value to DefaultValue.
func (s *Service) RemoveValidations(f form.Form, fields []Field) {
	const op = "remove_validations"
	if missing(f) {
		return
	}
	for _, field := range fields {
		c, ok := f.Get(field.Name)
		if !ok {
			s.skip(op, f, field.Name, "not found")
			continue
		}
		c.SetErrors(nil)
		c.ClearValidators()
		c.SetValue(field.DefaultValue)
	}
}

// DisableFields disables every named field, passing its Options through.
func (s *Service) DisableFields(f form.Form, fields []Field) {
	const op = "disable_fields"
	if missing(f) {
		return
	}
	for _, field := range fields {
		c, ok := f.Get(field.Name)
		if !ok {
			s.skip(op, f, field.Name, "not found")
			continue
		}
		c.Disable(field.Options.Options()...)
	}
}

// PatchValues sets every named field to its Value (nil when absent).
func (s *Service) PatchValues(f form.Form, fields []Field) {
	const op = "patch_values"
	if missing(f) {
		return
	}
	for _, field := range fields {
		c, ok := f.Get(field.Name)
		if !ok {
			s.skip(op, f, field.Name, "not found")
			continue
		}
		c.SetValue(field.Value)
	}
}

// AddOrRemoveControls attaches a new control for every toAdd entry whose name
// is not taken yet and detaches every toRemove entry that is present.
// Existing controls are never replaced.
func (s *Service) AddOrRemoveControls(f form.Form, toAdd []Field, toRemove []RemoveField) {
	const op = "add_or_remove_controls"
	if missing(f) {
		return
	}
	for _, field := range toAdd {
		if field.Name == "" {
			s.skip(op, f, field.Name, "empty name")
			continue
		}
		if f.Has(field.Name) {
			s.skip(op, f, field.Name, "already present")
			continue
		}
		f.AddControl(field.Name, form.NewControl(field.Value, field.Validations...))
	}
	for _, field := range toRemove {
		if !f.Has(field.Name) {
			s.skip(op, f, field.Name, "not found")
			continue
		}
		f.RemoveControl(field.Name, form.WithEmitEvent(field.EmitEvent))
	}
}

// MatchFields sets the mustMatch error on nameB when its value differs from
// nameA's and clears it when they are equal. Other error codes on nameB are
// preserved.
func (s *Service) MatchFields(f form.Form, nameA, nameB string) {
	const op = "match_fields"
	if missing(f) {
		return
	}
	a, okA := f.Get(nameA)
	b, okB := f.Get(nameB)
	if !okA || !okB {
		s.skip(op, f, nameA+","+nameB, "not found")
		return
	}

	errs := b.Errors()
	if reflect.DeepEqual(a.Value(), b.Value()) {
		if _, ok := errs[ErrorMustMatch]; !ok {
			return
		}
		delete(errs, ErrorMustMatch)
	} else {
		if errs == nil {
			errs = make(map[string]any, 1)
		}
		errs[ErrorMustMatch] = true
	}
	b.SetErrors(errs)
}

// InitializeForm creates a group with one control per field. A control
// starts with Value, falling back to DefaultValue. Duplicate names keep the
// first entry.
func (s *Service) InitializeForm(fields []Field, opts ...form.GroupOption) *form.Group {
	const op = "initialize_form"
	g := form.New(opts...)
	for _, field := range fields {
		value := field.Value
		if value == nil {
			value = field.DefaultValue
		}
		if !g.AddControl(field.Name, form.NewControl(value, field.Validations...)) {
			s.skip(op, g, field.Name, "duplicate or empty name")
		}
	}
	return g
}

// ResetForm resets every control. Without defaults all values become nil;
// with defaults each named control is reset to its Value, the first entry
// winning for duplicate names.
func (s *Service) ResetForm(f form.Form, defaults ...Field) {
	if missing(f) {
		return
	}
	if len(defaults) == 0 {
		f.Reset(nil)
		return
	}
	values := make(map[string]any, len(defaults))
	for _, field := range defaults {
		if _, seen := values[field.Name]; !seen {
			values[field.Name] = field.Value
		}
	}
	f.Reset(values)
}

// MarkAllTouched marks each control as touched without propagating to the form.
func (s *Service) MarkAllTouched(f form.Form) {
	if missing(f) {
		return
	}
	for _, name := range f.Names() {
		if c, ok := f.Get(name); ok {
			c.MarkAsTouched(form.OnlySelf())
		}
	}
}

// AddControl attaches c under name. It reports false for a nil form, an
// empty name, a nil control or a name that is already taken.
func (s *Service) AddControl(f form.Form, name string, c *form.Control) bool {
	if missing(f) || name == "" || c == nil {
		return false
	}
	return f.AddControl(name, c)
}

// RemoveControl detaches name. It reports false when there is nothing to remove.
func (s *Service) RemoveControl(f form.Form, name string) bool {
	if missing(f) || !f.Has(name) {
		return false
	}
	return f.RemoveControl(name)
}
