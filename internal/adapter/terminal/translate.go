package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/remap/internal/input/code"
)

// translateMods converts tcell modifier state.
func translateMods(m tcell.ModMask) code.Modifier {
	var mods code.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(code.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(code.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(code.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(code.ModMeta)
	}
	return mods
}

// specialKeys maps tcell named keys to codes.
var specialKeys = map[tcell.Key]code.Key{
	tcell.KeyEscape:     code.KeyEscape,
	tcell.KeyEnter:      code.KeyEnter,
	tcell.KeyTab:        code.KeyTab,
	tcell.KeyBackspace:  code.KeyBackspace,
	tcell.KeyBackspace2: code.KeyBackspace,
	tcell.KeyDelete:     code.KeyDelete,
	tcell.KeyInsert:     code.KeyInsert,
	tcell.KeyHome:       code.KeyHome,
	tcell.KeyEnd:        code.KeyEnd,
	tcell.KeyPgUp:       code.KeyPageUp,
	tcell.KeyPgDn:       code.KeyPageDown,
	tcell.KeyUp:         code.KeyUp,
	tcell.KeyDown:       code.KeyDown,
	tcell.KeyLeft:       code.KeyLeft,
	tcell.KeyRight:      code.KeyRight,
	tcell.KeyF1:         code.KeyF1,
	tcell.KeyF2:         code.KeyF2,
	tcell.KeyF3:         code.KeyF3,
	tcell.KeyF4:         code.KeyF4,
	tcell.KeyF5:         code.KeyF5,
	tcell.KeyF6:         code.KeyF6,
	tcell.KeyF7:         code.KeyF7,
	tcell.KeyF8:         code.KeyF8,
	tcell.KeyF9:         code.KeyF9,
	tcell.KeyF10:        code.KeyF10,
	tcell.KeyF11:        code.KeyF11,
	tcell.KeyF12:        code.KeyF12,
}

// TranslateKey converts a tcell key event to a raw input code.
// Returns false for keys the remapping layer does not model.
func TranslateKey(ev *tcell.EventKey) (code.Code, bool) {
	mods := translateMods(ev.Modifiers())
	k := ev.Key()

	// Named special keys first: several share byte values with control
	// characters (Enter is Ctrl-M on a terminal) and the named reading wins.
	if mapped, ok := specialKeys[k]; ok {
		return code.NewKeyCode(mapped, mods), true
	}

	// Ctrl+letter arrives as an ASCII control code.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		return code.NewRuneCode(r, mods.With(code.ModCtrl)), true
	}

	if k == tcell.KeyRune {
		r := ev.Rune()
		if r == 0 {
			return code.Code{}, false
		}
		// Uppercase characters carry implicit Shift, matching how the
		// binding parser normalizes "A" in a bindings file.
		if unicode.IsUpper(r) {
			mods = mods.With(code.ModShift)
		}
		return code.NewRuneCode(r, mods), true
	}

	return code.Code{}, false
}

// buttonOrder lists the mouse buttons we translate, in diff order.
var buttonOrder = []struct {
	mask   tcell.ButtonMask
	button code.Button
}{
	{tcell.ButtonPrimary, code.ButtonMouseLeft},
	{tcell.ButtonMiddle, code.ButtonMouseMiddle},
	{tcell.ButtonSecondary, code.ButtonMouseRight},
}

// TranslateMouse diffs a tcell mouse event against the previous button state
// and returns the press and release events the transition implies. Wheel
// movement is momentary and produces pressed-phase events only.
func TranslateMouse(ev *tcell.EventMouse, prev tcell.ButtonMask) []code.Event {
	mods := translateMods(ev.Modifiers())
	current := ev.Buttons()

	var events []code.Event
	for _, b := range buttonOrder {
		was := prev&b.mask != 0
		is := current&b.mask != 0

		switch {
		case is && !was:
			events = append(events, code.NewPressEvent(code.NewButtonCode(b.button, mods)))
		case was && !is:
			events = append(events, code.NewReleaseEvent(code.NewButtonCode(b.button, mods)))
		}
	}

	if current&tcell.WheelUp != 0 {
		events = append(events, code.NewPressEvent(code.NewButtonCode(code.ButtonWheelUp, mods)))
	}
	if current&tcell.WheelDown != 0 {
		events = append(events, code.NewPressEvent(code.NewButtonCode(code.ButtonWheelDown, mods)))
	}

	return events
}
