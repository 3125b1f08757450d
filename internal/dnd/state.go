package dnd

// State is the controller's drag state
type State int

const (
	// StateIdle means no drag is in progress
	StateIdle State = iota

	// StateDragging means a session is active and hovers update the preview
	StateDragging

	// StateCommitting means a drop is being applied to the collection
	StateCommitting

	// StateCancelling means the preview is being discarded
	StateCancelling
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	case StateCommitting:
		return "Committing"
	case StateCancelling:
		return "Cancelling"
	default:
		return "Unknown"
	}
}

// IsActive returns true while a session exists
func (s State) IsActive() bool {
	return s != StateIdle
}
