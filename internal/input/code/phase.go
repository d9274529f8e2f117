package code

// Phase indicates which transition of a physical input an event reports.
// The dispatch path is phase-agnostic: every phase flows through the same
// resolve and propagate algorithm.
type Phase uint8

const (
	// PhaseNone indicates no phase.
	PhaseNone Phase = iota

	// PhasePressed indicates the input transitioned to active.
	PhasePressed

	// PhaseReleased indicates the input transitioned to inactive.
	PhaseReleased

	// PhaseRepeat indicates an auto-repeat of a held input.
	PhaseRepeat
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePressed:
		return "pressed"
	case PhaseReleased:
		return "released"
	case PhaseRepeat:
		return "repeat"
	default:
		return "none"
	}
}
