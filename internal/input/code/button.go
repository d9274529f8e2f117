package code

import "strings"

// Button represents a mouse or gamepad button, or a discrete stick direction.
// Analog stick deflections past the dead zone are reported by input sources as
// directional button signals (ButtonStickL* / ButtonStickR*), which keeps the
// binding table uniform across devices.
type Button uint16

const (
	// ButtonNone represents no button.
	ButtonNone Button = iota

	// Mouse buttons
	ButtonMouseLeft
	ButtonMouseMiddle
	ButtonMouseRight
	ButtonWheelUp
	ButtonWheelDown

	// Gamepad face and shoulder buttons
	ButtonPadA
	ButtonPadB
	ButtonPadX
	ButtonPadY
	ButtonPadStart
	ButtonPadSelect
	ButtonPadL1
	ButtonPadR1
	ButtonPadL2
	ButtonPadR2

	// Gamepad directional pad
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	// Left stick directions
	ButtonStickLUp
	ButtonStickLDown
	ButtonStickLLeft
	ButtonStickLRight

	// Right stick directions
	ButtonStickRUp
	ButtonStickRDown
	ButtonStickRLeft
	ButtonStickRRight
)

// buttonNames is the canonical name for each button.
var buttonNames = map[Button]string{
	ButtonMouseLeft:   "MouseLeft",
	ButtonMouseMiddle: "MouseMiddle",
	ButtonMouseRight:  "MouseRight",
	ButtonWheelUp:     "WheelUp",
	ButtonWheelDown:   "WheelDown",
	ButtonPadA:        "PadA",
	ButtonPadB:        "PadB",
	ButtonPadX:        "PadX",
	ButtonPadY:        "PadY",
	ButtonPadStart:    "PadStart",
	ButtonPadSelect:   "PadSelect",
	ButtonPadL1:       "PadL1",
	ButtonPadR1:       "PadR1",
	ButtonPadL2:       "PadL2",
	ButtonPadR2:       "PadR2",
	ButtonDPadUp:      "DPadUp",
	ButtonDPadDown:    "DPadDown",
	ButtonDPadLeft:    "DPadLeft",
	ButtonDPadRight:   "DPadRight",
	ButtonStickLUp:    "StickLUp",
	ButtonStickLDown:  "StickLDown",
	ButtonStickLLeft:  "StickLLeft",
	ButtonStickLRight: "StickLRight",
	ButtonStickRUp:    "StickRUp",
	ButtonStickRDown:  "StickRDown",
	ButtonStickRLeft:  "StickRLeft",
	ButtonStickRRight: "StickRRight",
}

// lowerButtonNames maps lowercase names back to buttons, built once at init.
var lowerButtonNames = func() map[string]Button {
	m := make(map[string]Button, len(buttonNames))
	for b, name := range buttonNames {
		m[strings.ToLower(name)] = b
	}
	return m
}()

// String returns the canonical name for the button.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "None"
}

// ButtonFromName returns the button for a name, or ButtonNone if unknown.
// Names are case-insensitive.
func ButtonFromName(name string) Button {
	if b, ok := lowerButtonNames[strings.ToLower(name)]; ok {
		return b
	}
	return ButtonNone
}

// IsMouse returns true for mouse buttons including the wheel.
func (b Button) IsMouse() bool {
	return b >= ButtonMouseLeft && b <= ButtonWheelDown
}

// IsPad returns true for gamepad buttons, d-pad and stick directions.
func (b Button) IsPad() bool {
	return b >= ButtonPadA && b <= ButtonStickRRight
}
