package form

// EventKind names a change notification.
type EventKind string

const (
	EventValueChanged   EventKind = "value_changed"
	EventStatusChanged  EventKind = "status_changed"
	EventControlAdded   EventKind = "control_added"
	EventControlRemoved EventKind = "control_removed"
	EventReset          EventKind = "reset"
)

// Event describes a change on a group or one of its controls.
// Field is empty for group-level events.
type Event struct {
	Kind   EventKind
	FormID string
	Field  string
	Value  any
	Status Status
}

// Listener receives change notifications synchronously.
type Listener func(Event)
