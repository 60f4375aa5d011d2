package form

import (
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Group is an ordered set of named controls. It is the Form implementation.
type Group struct {
	id        string
	names     []string
	controls  map[string]*Control
	touched   bool
	dirty     bool
	listeners map[int]Listener
	nextID    int
}

// GroupOption configures a Group at construction time.
type GroupOption func(*Group)

// WithID overrides the generated group identifier. Empty ids are ignored.
func WithID(id string) GroupOption {
	return func(g *Group) {
		if id != "" {
			g.id = id
		}
	}
}

// WithListener subscribes fn before any control is added.
func WithListener(fn Listener) GroupOption {
	return func(g *Group) {
		g.Subscribe(fn)
	}
}

// New creates an empty group with a random identifier.
func New(opts ...GroupOption) *Group {
	g := &Group{
		id:       uuid.NewString(),
		controls: make(map[string]*Control),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

func (g *Group) ID() string { return g.id }

// Has reports whether a control is registered under name, enabled or not.
func (g *Group) Has(name string) bool {
	_, ok := g.controls[name]
	return ok
}

func (g *Group) Get(name string) (*Control, bool) {
	c, ok := g.controls[name]
	return c, ok
}

// Names returns control names in insertion order.
func (g *Group) Names() []string { return slices.Clone(g.names) }

func (g *Group) Len() int { return len(g.names) }

// AddControl registers c under name. It returns false and leaves the group
// untouched when name is empty, c is nil or the name is already taken.
func (g *Group) AddControl(name string, c *Control, opts ...Option) bool {
	if name == "" || c == nil || g.Has(name) {
		return false
	}
	cfg := resolve(opts)

	c.parent = g
	c.name = name
	g.names = append(g.names, name)
	g.controls[name] = c

	if cfg.emitEvent {
		g.emit(Event{Kind: EventControlAdded, Field: name, Value: c.value})
	}
	g.updateValueAndValidity(cfg)
	return true
}

// RemoveControl detaches the control registered under name.
// It returns false when there is none.
func (g *Group) RemoveControl(name string, opts ...Option) bool {
	c, ok := g.controls[name]
	if !ok {
		return false
	}
	cfg := resolve(opts)

	delete(g.controls, name)
	g.names = slices.DeleteFunc(g.names, func(n string) bool { return n == name })
	c.parent = nil
	c.name = ""

	if cfg.emitEvent {
		g.emit(Event{Kind: EventControlRemoved, Field: name})
	}
	g.updateValueAndValidity(cfg)
	return true
}

// Value returns a snapshot of enabled control values. When every control is
// disabled the snapshot holds all of them.
func (g *Group) Value() map[string]any {
	allDisabled := g.allDisabled()
	out := make(map[string]any, len(g.names))
	for _, name := range g.names {
		c := g.controls[name]
		if c.disabled && !allDisabled {
			continue
		}
		out[name] = c.value
	}
	return out
}

// RawValue returns a snapshot of every control value, disabled or not.
func (g *Group) RawValue() map[string]any {
	out := make(map[string]any, len(g.names))
	for _, name := range g.names {
		out[name] = g.controls[name].value
	}
	return out
}

// PatchValue sets the controls named in values; unknown keys are ignored.
func (g *Group) PatchValue(values map[string]any, opts ...Option) {
	cfg := resolve(opts)
	for _, name := range g.names {
		v, ok := values[name]
		if !ok {
			continue
		}
		g.controls[name].SetValue(v, cfg.forward(true)...)
	}
	g.updateValueAndValidity(cfg)
}

// Reset resets every control to values[name] (nil when absent) and clears
// the touched and dirty marks on the group and its controls.
func (g *Group) Reset(values map[string]any, opts ...Option) {
	cfg := resolve(opts)
	for _, name := range g.names {
		g.controls[name].Reset(values[name], cfg.forward(true)...)
	}
	g.touched = false
	g.dirty = false

	if cfg.emitEvent {
		g.emit(Event{Kind: EventReset, Value: g.Value()})
	}
	g.updateValueAndValidity(cfg)
}

// Status is DISABLED when every control is disabled, INVALID when any
// enabled control is invalid and VALID otherwise.
func (g *Group) Status() Status {
	if g.allDisabled() {
		return StatusDisabled
	}
	for _, name := range g.names {
		if g.controls[name].Invalid() {
			return StatusInvalid
		}
	}
	return StatusValid
}

func (g *Group) Valid() bool   { return g.Status() == StatusValid }
func (g *Group) Invalid() bool { return g.Status() == StatusInvalid }

func (g *Group) Touched() bool  { return g.touched }
func (g *Group) Dirty() bool    { return g.dirty }
func (g *Group) Pristine() bool { return !g.dirty }

// MarkAllAsTouched marks the group and every control as touched.
func (g *Group) MarkAllAsTouched() {
	for _, name := range g.names {
		g.controls[name].MarkAsTouched()
	}
	g.touched = true
}

// Err collects the errors of every enabled control into
// validator.ValidationErrors, or returns nil when the group has none.
// Codes are reported in lexical order per control.
func (g *Group) Err() error {
	var errs validator.ValidationErrors
	for _, name := range g.names {
		c := g.controls[name]
		if c.disabled || len(c.errors) == 0 {
			continue
		}
		codes := make([]string, 0, len(c.errors))
		for code := range c.errors {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		for _, code := range codes {
			errs.Add(fieldError(name, code, c.errors[code]))
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (g *Group) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	if g.listeners == nil {
		g.listeners = make(map[int]Listener)
	}
	id := g.nextID
	g.nextID++
	g.listeners[id] = fn
	return func() { delete(g.listeners, id) }
}

func (g *Group) updateValueAndValidity(cfg updateConfig) {
	if !cfg.emitEvent {
		return
	}
	g.emit(Event{Kind: EventValueChanged, Value: g.Value()})
	g.emit(Event{Kind: EventStatusChanged, Status: g.Status()})
}

func (g *Group) emit(evt Event) {
	if len(g.listeners) == 0 {
		return
	}
	evt.FormID = g.id

	ids := make([]int, 0, len(g.listeners))
	for id := range g.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := g.listeners[id]; ok {
			fn(evt)
		}
	}
}

func (g *Group) allDisabled() bool {
	if len(g.names) == 0 {
		return false
	}
	for _, name := range g.names {
		if !g.controls[name].disabled {
			return false
		}
	}
	return true
}

func fieldError(field, code string, detail any) validator.ValidationError {
	if ve, ok := detail.(validator.ValidationError); ok {
		ve.Field = field
		if ve.Code == "" {
			ve.Code = code
		}
		ve.TranslationValues = withLabel(ve.TranslationValues, field)
		return ve
	}
	return validator.ValidationError{
		Field:             field,
		Code:              code,
		Message:           fmt.Sprintf("failed %s check", code),
		TranslationKey:    "validation." + code,
		TranslationValues: withLabel(nil, field),
	}
}

func withLabel(values map[string]any, field string) map[string]any {
	out := make(map[string]any, len(values)+2)
	for k, v := range values {
		out[k] = v
	}
	out["field"] = field
	out["label"] = validator.Label(field)
	return out
}
