package action_test

import (
	"testing"

	"github.com/dshills/remap/internal/input/action"
	"github.com/dshills/remap/internal/input/code"
)

func TestNewAction(t *testing.T) {
	act := action.New("move.up")

	if act.Name != "move.up" {
		t.Errorf("expected name move.up, got %q", act.Name)
	}
	if !act.IsPress() {
		t.Error("new actions default to pressed phase")
	}
	if act.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestActionBuilders(t *testing.T) {
	act := action.New("game.interact").
		WithPhase(code.PhaseReleased).
		WithSource(action.SourceAPI)

	if !act.IsRelease() {
		t.Error("expected released phase")
	}
	if act.Source != action.SourceAPI {
		t.Errorf("expected api source, got %v", act.Source)
	}

	// Builders copy; the original is unchanged.
	base := action.New("move.up")
	_ = base.WithPhase(code.PhaseReleased)
	if !base.IsPress() {
		t.Error("WithPhase should not mutate the receiver")
	}
}

func TestActionWithCode(t *testing.T) {
	tests := []struct {
		name string
		code code.Code
		want action.Source
	}{
		{"keyboard", code.MustParse("w"), action.SourceKeyboard},
		{"mouse", code.MustParse("MouseLeft"), action.SourceMouse},
		{"gamepad", code.MustParse("PadA"), action.SourceGamepad},
		{"stick", code.MustParse("StickLUp"), action.SourceGamepad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act := action.New("game.attack").WithCode(tt.code)
			if act.Source != tt.want {
				t.Errorf("expected source %v, got %v", tt.want, act.Source)
			}
			if act.Code != tt.code {
				t.Error("expected originating code to be retained")
			}
		})
	}
}

func TestActionString(t *testing.T) {
	act := action.New("move.up")
	if got := act.String(); got != "move.up (pressed)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		source action.Source
		want   string
	}{
		{action.SourceKeyboard, "keyboard"},
		{action.SourceMouse, "mouse"},
		{action.SourceGamepad, "gamepad"},
		{action.SourceScript, "script"},
		{action.SourceAPI, "api"},
		{action.SourceNone, "none"},
	}

	for _, tt := range tests {
		if got := tt.source.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.source, got, tt.want)
		}
	}
}
