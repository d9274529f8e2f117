package action_test

import (
	"errors"
	"testing"

	"github.com/dshills/remap/internal/input/action"
)

func TestSetMembership(t *testing.T) {
	set := action.NewSet("move.up", "move.down", "game.interact")

	if set.Len() != 3 {
		t.Fatalf("expected 3 actions, got %d", set.Len())
	}
	if !set.Contains("move.up") {
		t.Error("expected move.up in set")
	}
	if set.Contains("move.left") {
		t.Error("move.left should not be in set")
	}
}

func TestSetRegister(t *testing.T) {
	set := action.NewSet()

	if err := set.Register("app.quit"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if !set.Contains("app.quit") {
		t.Error("expected app.quit after Register")
	}

	if err := set.Register(""); !errors.Is(err, action.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}

	// Registering twice is harmless.
	_ = set.Register("app.quit")
	if set.Len() != 1 {
		t.Errorf("duplicate register changed size: %d", set.Len())
	}
}

func TestSetValidate(t *testing.T) {
	set := action.NewSet("move.up")

	if err := set.Validate("move.up"); err != nil {
		t.Errorf("Validate(move.up) = %v", err)
	}
	if err := set.Validate("bogus"); !errors.Is(err, action.ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestSetNamesSorted(t *testing.T) {
	set := action.NewSet("z.last", "a.first", "m.middle")

	names := set.Names()
	want := []string{"a.first", "m.middle", "z.last"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestSetIgnoresEmptyNames(t *testing.T) {
	set := action.NewSet("move.up", "", "move.down")
	if set.Len() != 2 {
		t.Errorf("expected empty names ignored, got %d members", set.Len())
	}
}
