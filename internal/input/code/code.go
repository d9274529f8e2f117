package code

import "strings"

// Kind discriminates the device family a code belongs to.
type Kind uint8

const (
	// KindNone indicates an empty code.
	KindNone Kind = iota
	// KindKey indicates a keyboard key.
	KindKey
	// KindButton indicates a mouse or gamepad button.
	KindButton
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindButton:
		return "button"
	default:
		return "none"
	}
}

// Code identifies one physical input signal: a key (with modifiers), a mouse
// button or a gamepad button. Codes are comparable values and serve directly
// as binding table keys.
type Code struct {
	// Kind identifies the device family.
	Kind Kind

	// Key identifies the key for KindKey codes.
	Key Key

	// Rune is the character for Key == KeyRune.
	Rune rune

	// Button identifies the button for KindButton codes.
	Button Button

	// Mods contains the active modifier keys.
	Mods Modifier
}

// NewKeyCode creates a code for a special (non-character) key.
func NewKeyCode(key Key, mods Modifier) Code {
	return Code{Kind: KindKey, Key: key, Mods: mods}
}

// NewRuneCode creates a code for a character key.
func NewRuneCode(r rune, mods Modifier) Code {
	return Code{Kind: KindKey, Key: KeyRune, Rune: r, Mods: mods}
}

// NewButtonCode creates a code for a mouse or gamepad button.
func NewButtonCode(button Button, mods Modifier) Code {
	return Code{Kind: KindButton, Button: button, Mods: mods}
}

// IsZero returns true for the empty code.
func (c Code) IsZero() bool {
	return c.Kind == KindNone
}

// IsRune returns true if this is a character key code.
func (c Code) IsRune() bool {
	return c.Kind == KindKey && c.Key == KeyRune && c.Rune != 0
}

// String returns a canonical spec string that Parse accepts.
// Examples: "a", "C-s", "Up", "C-S-Up", "MouseLeft", "A-MouseRight".
func (c Code) String() string {
	var parts []string

	if c.Mods.HasCtrl() {
		parts = append(parts, "C")
	}
	if c.Mods.HasAlt() {
		parts = append(parts, "A")
	}
	if c.Mods.HasMeta() {
		parts = append(parts, "M")
	}
	// Shift is implicit in the character itself for rune codes.
	if c.Mods.HasShift() && !c.IsRune() {
		parts = append(parts, "S")
	}

	var name string
	switch c.Kind {
	case KindKey:
		if c.Key == KeyRune {
			if c.Rune == ' ' {
				name = "Space"
			} else {
				name = string(c.Rune)
			}
		} else {
			name = c.Key.String()
		}
	case KindButton:
		name = c.Button.String()
	default:
		name = "None"
	}

	parts = append(parts, name)
	return strings.Join(parts, "-")
}
