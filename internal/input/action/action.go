package action

import (
	"time"

	"github.com/dshills/remap/internal/input/code"
)

// Source indicates the origin of an action.
type Source uint8

const (
	// SourceNone indicates an unknown origin.
	SourceNone Source = iota
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard
	// SourceMouse indicates the action originated from mouse input.
	SourceMouse
	// SourceGamepad indicates the action originated from gamepad input.
	SourceGamepad
	// SourceScript indicates the action was synthesized by a script.
	SourceScript
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouse:
		return "mouse"
	case SourceGamepad:
		return "gamepad"
	case SourceScript:
		return "script"
	case SourceAPI:
		return "api"
	default:
		return "none"
	}
}

// SourceForCode returns the source implied by a raw input code.
func SourceForCode(c code.Code) Source {
	switch c.Kind {
	case code.KindKey:
		return SourceKeyboard
	case code.KindButton:
		if c.Button.IsMouse() {
			return SourceMouse
		}
		return SourceGamepad
	default:
		return SourceNone
	}
}

// Action represents a semantic command produced by resolving a raw input
// code through the binding table.
type Action struct {
	// Name is the action identifier (e.g., "move.up", "game.interact").
	Name string

	// Phase is the input transition that produced the action.
	Phase code.Phase

	// Source indicates where the action originated.
	Source Source

	// Code is the raw input code that resolved to this action.
	// Zero for actions not produced by physical input.
	Code code.Code

	// Timestamp is when the triggering input occurred.
	Timestamp time.Time
}

// New creates an action with the given name, pressed phase and the current
// timestamp.
func New(name string) Action {
	return Action{
		Name:      name,
		Phase:     code.PhasePressed,
		Timestamp: time.Now(),
	}
}

// WithPhase returns a copy of the action with the specified phase.
func (a Action) WithPhase(phase code.Phase) Action {
	a.Phase = phase
	return a
}

// WithSource returns a copy of the action with the specified source.
func (a Action) WithSource(source Source) Action {
	a.Source = source
	return a
}

// WithCode returns a copy of the action with the originating code set,
// adjusting the source to match the code's device family.
func (a Action) WithCode(c code.Code) Action {
	a.Code = c
	a.Source = SourceForCode(c)
	return a
}

// IsPress returns true for pressed-phase actions.
func (a Action) IsPress() bool {
	return a.Phase == code.PhasePressed
}

// IsRelease returns true for released-phase actions.
func (a Action) IsRelease() bool {
	return a.Phase == code.PhaseReleased
}

// String returns a representation like "move.up (pressed)".
func (a Action) String() string {
	return a.Name + " (" + a.Phase.String() + ")"
}
