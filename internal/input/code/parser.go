package code

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty code specification")
	ErrInvalidSpec = errors.New("invalid code specification")
)

// Parse parses a code specification string into a Code.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Space", "Up"
//   - Buttons: "MouseLeft", "WheelUp", "PadA", "StickLUp"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f4>", "<C-S-p>", "<CR>", "<Esc>"
func Parse(spec string) (Code, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Code{}, ErrEmptySpec
	}

	// Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseHyphenStyle(spec[1 : len(spec)-1])
	}

	// Modifier+Key format (Ctrl+S, Alt+F4)
	if strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	// Short hyphen format (C-s) when the spec has a modifier prefix.
	if len(spec) > 2 && spec[1] == '-' && isShortModifier(spec[0]) {
		return parseHyphenStyle(spec)
	}

	// Single character or key/button name
	return parseName(spec, ModNone)
}

// isShortModifier reports whether b is a single-letter modifier prefix.
func isShortModifier(b byte) bool {
	switch b {
	case 'C', 'A', 'S', 'M', 'D', 'c', 'a', 's', 'm', 'd':
		return true
	}
	return false
}

// parseHyphenStyle parses hyphen-separated notation like "C-s", "A-F4", "CR".
func parseHyphenStyle(inner string) (Code, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Code{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	namePart := parts[len(parts)-1]

	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d":
			mods = mods.With(ModMeta)
		default:
			return Code{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseName(namePart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Code, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Code{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Code{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseName(strings.TrimSpace(parts[len(parts)-1]), mods)
}

// parseName parses a key name, button name or single character.
func parseName(name string, mods Modifier) (Code, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Code{}, ErrInvalidSpec
	}

	// Named characters that clash with the spec syntax.
	switch strings.ToLower(name) {
	case "space":
		return NewRuneCode(' ', mods), nil
	case "lt":
		return NewRuneCode('<', mods), nil
	case "gt":
		return NewRuneCode('>', mods), nil
	case "minus":
		return NewRuneCode('-', mods), nil
	case "plus":
		return NewRuneCode('+', mods), nil
	}

	if key := KeyFromName(name); key != KeyNone {
		return NewKeyCode(key, mods), nil
	}

	if button := ButtonFromName(name); button != ButtonNone {
		return NewButtonCode(button, mods), nil
	}

	runes := []rune(name)
	if len(runes) == 1 {
		r := runes[0]
		// Ctrl combinations are case-insensitive.
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		// Uppercase letters carry implicit Shift.
		if unicode.IsUpper(r) {
			mods = mods.With(ModShift)
		}
		return NewRuneCode(r, mods), nil
	}

	return Code{}, fmt.Errorf("%w: unknown code %q", ErrInvalidSpec, name)
}

// MustParse parses a code specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Code {
	c, err := Parse(spec)
	if err != nil {
		panic("invalid code specification: " + spec + ": " + err.Error())
	}
	return c
}

// NormalizeSpec parses and re-formats a specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	c, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
