package code

import (
	"fmt"
	"time"
)

// Event represents a single physical input transition: a code plus the phase
// of the transition. The host input source delivers events one at a time, in
// chronological order, never concurrently.
type Event struct {
	// Code identifies the input signal.
	Code Code

	// Phase is the transition being reported.
	Phase Phase

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates an event with the current timestamp.
func NewEvent(c Code, phase Phase) Event {
	return Event{
		Code:      c,
		Phase:     phase,
		Timestamp: time.Now(),
	}
}

// NewPressEvent creates a pressed-phase event with the current timestamp.
func NewPressEvent(c Code) Event {
	return NewEvent(c, PhasePressed)
}

// NewReleaseEvent creates a released-phase event with the current timestamp.
func NewReleaseEvent(c Code) Event {
	return NewEvent(c, PhaseReleased)
}

// IsPress returns true for pressed-phase events.
func (e Event) IsPress() bool {
	return e.Phase == PhasePressed
}

// IsRelease returns true for released-phase events.
func (e Event) IsRelease() bool {
	return e.Phase == PhaseReleased
}

// Equals returns true if two events report the same transition.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Code == other.Code && e.Phase == other.Phase
}

// String returns a representation like "C-s (pressed)".
func (e Event) String() string {
	return fmt.Sprintf("%s (%s)", e.Code, e.Phase)
}
