package terminal_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/remap/internal/adapter/terminal"
	"github.com/dshills/remap/internal/input/code"
)

func TestTranslateKeyRunes(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want code.Code
	}{
		{
			name: "lowercase letter",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone),
			want: code.NewRuneCode('w', 0),
		},
		{
			name: "uppercase gains shift",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone),
			want: code.NewRuneCode('W', code.ModShift),
		},
		{
			name: "alt letter",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			want: code.NewRuneCode('x', code.ModAlt),
		},
		{
			name: "digit",
			ev:   tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone),
			want: code.NewRuneCode('3', 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := terminal.TranslateKey(tt.ev)
			if !ok {
				t.Fatal("expected translation")
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranslateKeySpecials(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want code.Code
	}{
		{
			name: "escape",
			ev:   tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			want: code.NewKeyCode(code.KeyEscape, 0),
		},
		{
			name: "arrow up",
			ev:   tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
			want: code.NewKeyCode(code.KeyUp, 0),
		},
		{
			name: "shifted arrow",
			ev:   tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift),
			want: code.NewKeyCode(code.KeyUp, code.ModShift),
		},
		{
			name: "function key",
			ev:   tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			want: code.NewKeyCode(code.KeyF5, 0),
		},
		{
			name: "alternate backspace",
			ev:   tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			want: code.NewKeyCode(code.KeyBackspace, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := terminal.TranslateKey(tt.ev)
			if !ok {
				t.Fatal("expected translation")
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranslateKeyCtrlLetters(t *testing.T) {
	got, ok := terminal.TranslateKey(tcell.NewEventKey(tcell.KeyCtrlS, rune(tcell.KeyCtrlS), tcell.ModCtrl))
	if !ok {
		t.Fatal("expected translation")
	}
	want := code.NewRuneCode('s', code.ModCtrl)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Enter shares its byte value with Ctrl-M; the named key must win.
func TestTranslateKeyEnterIsNotCtrlM(t *testing.T) {
	got, ok := terminal.TranslateKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !ok {
		t.Fatal("expected translation")
	}
	want := code.NewKeyCode(code.KeyEnter, 0)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTranslateMousePressAndRelease(t *testing.T) {
	press := tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone)
	events := terminal.TranslateMouse(press, tcell.ButtonNone)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Code.Button != code.ButtonMouseLeft || events[0].Phase != code.PhasePressed {
		t.Errorf("unexpected press event: %v", events[0])
	}

	release := tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)
	events = terminal.TranslateMouse(release, tcell.ButtonPrimary)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Code.Button != code.ButtonMouseLeft || events[0].Phase != code.PhaseReleased {
		t.Errorf("unexpected release event: %v", events[0])
	}
}

func TestTranslateMouseNoTransition(t *testing.T) {
	held := tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone)
	events := terminal.TranslateMouse(held, tcell.ButtonPrimary)
	if len(events) != 0 {
		t.Errorf("held button produced %d events", len(events))
	}
}

func TestTranslateMouseMultipleTransitions(t *testing.T) {
	// Right pressed while left releases in the same event.
	ev := tcell.NewEventMouse(0, 0, tcell.ButtonSecondary, tcell.ModNone)
	events := terminal.TranslateMouse(ev, tcell.ButtonPrimary)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	var sawLeftRelease, sawRightPress bool
	for _, e := range events {
		if e.Code.Button == code.ButtonMouseLeft && e.Phase == code.PhaseReleased {
			sawLeftRelease = true
		}
		if e.Code.Button == code.ButtonMouseRight && e.Phase == code.PhasePressed {
			sawRightPress = true
		}
	}
	if !sawLeftRelease || !sawRightPress {
		t.Errorf("missing transition events: %v", events)
	}
}

func TestTranslateMouseWheel(t *testing.T) {
	ev := tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone)
	events := terminal.TranslateMouse(ev, tcell.ButtonNone)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Code.Button != code.ButtonWheelUp || events[0].Phase != code.PhasePressed {
		t.Errorf("unexpected wheel event: %v", events[0])
	}
}

func TestTranslateMouseModifiers(t *testing.T) {
	ev := tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModCtrl)
	events := terminal.TranslateMouse(ev, tcell.ButtonNone)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].Code.Mods.HasCtrl() {
		t.Error("modifier lost in mouse translation")
	}
}
