package code

import "strings"

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field on Code.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Code.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyF1:
		return "F1"
	case KeyF2:
		return "F2"
	case KeyF3:
		return "F3"
	case KeyF4:
		return "F4"
	case KeyF5:
		return "F5"
	case KeyF6:
		return "F6"
	case KeyF7:
		return "F7"
	case KeyF8:
		return "F8"
	case KeyF9:
		return "F9"
	case KeyF10:
		return "F10"
	case KeyF11:
		return "F11"
	case KeyF12:
		return "F12"
	case KeyRune:
		return "Rune"
	default:
		return "Unknown"
	}
}

// keyNames maps lowercase key names and aliases to keys.
var keyNames = map[string]Key{
	"escape":   KeyEscape,
	"esc":      KeyEscape,
	"enter":    KeyEnter,
	"return":   KeyEnter,
	"cr":       KeyEnter,
	"tab":      KeyTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":     KeyHome,
	"end":      KeyEnd,
	"pageup":   KeyPageUp,
	"pgup":     KeyPageUp,
	"pagedown": KeyPageDown,
	"pgdn":     KeyPageDown,
	"up":       KeyUp,
	"down":     KeyDown,
	"left":     KeyLeft,
	"right":    KeyRight,
	"f1":       KeyF1,
	"f2":       KeyF2,
	"f3":       KeyF3,
	"f4":       KeyF4,
	"f5":       KeyF5,
	"f6":       KeyF6,
	"f7":       KeyF7,
	"f8":       KeyF8,
	"f9":       KeyF9,
	"f10":      KeyF10,
	"f11":      KeyF11,
	"f12":      KeyF12,
}

// KeyFromName returns the key for a name, or KeyNone if unknown.
// Names are case-insensitive and common aliases (esc, cr, bs) are accepted.
func KeyFromName(name string) Key {
	if k, ok := keyNames[strings.ToLower(name)]; ok {
		return k
	}
	return KeyNone
}

// IsSpecial returns true for non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}
