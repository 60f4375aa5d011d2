package form

// Status is the validity state of a control or group.
type Status string

const (
	StatusValid    Status = "VALID"
	StatusInvalid  Status = "INVALID"
	StatusDisabled Status = "DISABLED"
)

// Form is a named collection of controls with aggregate validity.
type Form interface {
	ID() string
	Has(name string) bool
	Get(name string) (*Control, bool)
	Names() []string
	AddControl(name string, c *Control, opts ...Option) bool
	RemoveControl(name string, opts ...Option) bool
	Value() map[string]any
	RawValue() map[string]any
	PatchValue(values map[string]any, opts ...Option)
	Reset(values map[string]any, opts ...Option)
	Valid() bool
}

// ErrorReporter is implemented by anything exposing error codes with details.
type ErrorReporter interface {
	GetError(code string) (any, bool)
}

// Marker is implemented by anything carrying interaction and validity marks.
type Marker interface {
	Touched() bool
	Dirty() bool
	Pristine() bool
	Valid() bool
	Invalid() bool
}

var (
	_ Form          = (*Group)(nil)
	_ ErrorReporter = (*Control)(nil)
	_ Marker        = (*Control)(nil)
	_ Marker        = (*Group)(nil)
)

// Mark names a state a Marker can be asked about.
type Mark string

const (
	MarkTouched   Mark = "touched"
	MarkUntouched Mark = "untouched"
	MarkDirty     Mark = "dirty"
	MarkPristine  Mark = "pristine"
	MarkValid     Mark = "valid"
	MarkInvalid   Mark = "invalid"
)

// Holds reports whether m is currently true for target. Unknown marks never hold.
func (m Mark) Holds(target Marker) bool {
	if target == nil {
		return false
	}
	switch m {
	case MarkTouched:
		return target.Touched()
	case MarkUntouched:
		return !target.Touched()
	case MarkDirty:
		return target.Dirty()
	case MarkPristine:
		return target.Pristine()
	case MarkValid:
		return target.Valid()
	case MarkInvalid:
		return target.Invalid()
	}
	return false
}
