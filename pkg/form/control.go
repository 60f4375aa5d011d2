package form

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Control is a single input: its value, validators, errors and marks.
type Control struct {
	value      any
	validators []validator.Validator
	errors     map[string]any
	disabled   bool
	touched    bool
	dirty      bool

	parent *Group
	name   string
}

// NewControl creates a control holding value and runs validators once.
func NewControl(value any, validators ...validator.Validator) *Control {
	c := &Control{value: value}
	c.SetValidators(validators...)
	c.runValidators()
	return c
}

// Name returns the name the control is registered under, or "" when detached.
func (c *Control) Name() string { return c.name }

func (c *Control) Value() any { return c.value }

// SetValue replaces the value and recomputes validity.
func (c *Control) SetValue(value any, opts ...Option) {
	c.value = value
	c.UpdateValueAndValidity(opts...)
}

// Validators returns a copy of the validator list.
func (c *Control) Validators() []validator.Validator {
	return slices.Clone(c.validators)
}

// HasValidators reports whether any validator is attached.
func (c *Control) HasValidators() bool { return len(c.validators) > 0 }

// SetValidators replaces the validator list. Nil validators are dropped.
// Validity is not recomputed; call UpdateValueAndValidity afterwards.
func (c *Control) SetValidators(validators ...validator.Validator) {
	c.validators = c.validators[:0:0]
	for _, v := range validators {
		if v != nil {
			c.validators = append(c.validators, v)
		}
	}
}

func (c *Control) ClearValidators() { c.validators = nil }

// UpdateValueAndValidity reruns the validators and notifies the group.
func (c *Control) UpdateValueAndValidity(opts ...Option) {
	cfg := resolve(opts)
	c.runValidators()

	if cfg.emitEvent {
		c.emit(Event{Kind: EventValueChanged, Value: c.value})
		c.emit(Event{Kind: EventStatusChanged, Status: c.Status()})
	}
	if !cfg.onlySelf && c.parent != nil {
		c.parent.updateValueAndValidity(cfg)
	}
}

func (c *Control) runValidators() {
	if c.disabled {
		c.errors = nil
		return
	}
	failures := validator.Run(c.value, c.validators...)
	if failures.IsEmpty() {
		c.errors = nil
		return
	}
	c.errors = make(map[string]any, len(failures))
	for _, f := range failures {
		if _, seen := c.errors[f.Code]; !seen {
			c.errors[f.Code] = f
		}
	}
}

// Errors returns a copy of the current error set, or nil when there is none.
func (c *Control) Errors() map[string]any {
	if len(c.errors) == 0 {
		return nil
	}
	return maps.Clone(c.errors)
}

// SetErrors replaces the error set without running validators.
// A nil or empty map clears every error.
func (c *Control) SetErrors(errs map[string]any, opts ...Option) {
	cfg := resolve(opts)
	if len(errs) == 0 {
		c.errors = nil
	} else {
		c.errors = maps.Clone(errs)
	}
	if cfg.emitEvent {
		c.emit(Event{Kind: EventStatusChanged, Status: c.Status()})
	}
}

func (c *Control) HasError(code string) bool {
	_, ok := c.errors[code]
	return ok
}

// GetError returns the detail stored under code.
func (c *Control) GetError(code string) (any, bool) {
	detail, ok := c.errors[code]
	return detail, ok
}

// Disable excludes the control from validation and from the group value.
func (c *Control) Disable(opts ...Option) {
	cfg := resolve(opts)
	c.disabled = true
	c.errors = nil

	if cfg.emitEvent {
		c.emit(Event{Kind: EventStatusChanged, Status: StatusDisabled})
	}
	if !cfg.onlySelf && c.parent != nil {
		c.parent.updateValueAndValidity(cfg)
	}
}

func (c *Control) Enable(opts ...Option) {
	c.disabled = false
	c.UpdateValueAndValidity(opts...)
}

func (c *Control) Disabled() bool { return c.disabled }
func (c *Control) Enabled() bool  { return !c.disabled }

func (c *Control) Touched() bool   { return c.touched }
func (c *Control) Untouched() bool { return !c.touched }

// MarkAsTouched flags the control as touched; without OnlySelf the group is marked too.
func (c *Control) MarkAsTouched(opts ...Option) {
	cfg := resolve(opts)
	c.touched = true
	if !cfg.onlySelf && c.parent != nil {
		c.parent.touched = true
	}
}

func (c *Control) MarkAsUntouched(opts ...Option) {
	c.touched = false
}

func (c *Control) Dirty() bool    { return c.dirty }
func (c *Control) Pristine() bool { return !c.dirty }

func (c *Control) MarkAsDirty(opts ...Option) {
	cfg := resolve(opts)
	c.dirty = true
	if !cfg.onlySelf && c.parent != nil {
		c.parent.dirty = true
	}
}

func (c *Control) MarkAsPristine(opts ...Option) {
	c.dirty = false
}

// Status reports DISABLED, INVALID or VALID, in that precedence.
func (c *Control) Status() Status {
	switch {
	case c.disabled:
		return StatusDisabled
	case len(c.errors) > 0:
		return StatusInvalid
	default:
		return StatusValid
	}
}

func (c *Control) Valid() bool   { return c.Status() == StatusValid }
func (c *Control) Invalid() bool { return c.Status() == StatusInvalid }

// Reset sets value, clears the touched and dirty marks and recomputes validity.
func (c *Control) Reset(value any, opts ...Option) {
	c.value = value
	c.touched = false
	c.dirty = false
	c.UpdateValueAndValidity(opts...)
}

func (c *Control) emit(evt Event) {
	if c.parent == nil {
		return
	}
	evt.Field = c.name
	c.parent.emit(evt)
}
