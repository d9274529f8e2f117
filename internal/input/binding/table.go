package binding

import (
	"fmt"
	"sync"

	"github.com/dshills/remap/internal/input/action"
	"github.com/dshills/remap/internal/input/code"
)

// Table maps raw input codes to semantic action names.
//
// Many codes may map to the same action; one code resolves to exactly one
// action, and rebinding a code overwrites its prior target. The table can be
// mutated per key with Bind/Unbind or wholesale with ReplaceAll, which is the
// path used when user-configured bindings are loaded from a file.
type Table struct {
	mu      sync.RWMutex
	entries map[code.Code]string
	actions *action.Set
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithActions restricts the table to the given closed action set.
// Bind and ReplaceAll reject names outside the set.
func WithActions(set *action.Set) TableOption {
	return func(t *Table) {
		t.actions = set
	}
}

// NewTable creates an empty binding table.
func NewTable(opts ...TableOption) *Table {
	t := &Table{
		entries: make(map[code.Code]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Bind sets or overwrites the action bound to a code.
func (t *Table) Bind(c code.Code, actionName string) error {
	if c.IsZero() {
		return ErrInvalidCode
	}
	if actionName == "" {
		return ErrEmptyAction
	}
	if t.actions != nil {
		if err := t.actions.Validate(actionName); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[c] = actionName
	return nil
}

// BindSpec parses a code specification and binds it to an action.
func (t *Table) BindSpec(spec, actionName string) error {
	c, err := code.Parse(spec)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidCode, spec, err)
	}
	return t.Bind(c, actionName)
}

// MustBind binds a code spec to an action and panics on error.
// Use only for known-valid specs in initialization code.
func (t *Table) MustBind(spec, actionName string) *Table {
	if err := t.BindSpec(spec, actionName); err != nil {
		panic("invalid binding: " + spec + " -> " + actionName + ": " + err.Error())
	}
	return t
}

// Resolve returns the action bound to a code.
// The second result is false for unbound codes; an unbound code is not an
// error condition.
func (t *Table) Resolve(c code.Code) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	name, ok := t.entries[c]
	return name, ok
}

// Unbind removes the binding for a code.
// Returns true if a binding was removed.
func (t *Table) Unbind(c code.Code) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[c]
	delete(t.entries, c)
	return ok
}

// Clear removes all bindings.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[code.Code]string)
}

// ReplaceAll atomically replaces the whole table with new entries.
// The new entries are validated before any are applied, so a bad set leaves
// the current table untouched.
func (t *Table) ReplaceAll(entries map[code.Code]string) error {
	next := make(map[code.Code]string, len(entries))
	for c, name := range entries {
		if c.IsZero() {
			return ErrInvalidCode
		}
		if name == "" {
			return ErrEmptyAction
		}
		if t.actions != nil {
			if err := t.actions.Validate(name); err != nil {
				return err
			}
		}
		next[c] = name
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = next
	return nil
}

// Entries returns a copy of the current bindings.
func (t *Table) Entries() map[code.Code]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[code.Code]string, len(t.entries))
	for c, name := range t.entries {
		out[c] = name
	}
	return out
}

// CodesFor returns all codes currently bound to an action.
func (t *Table) CodesFor(actionName string) []code.Code {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var codes []code.Code
	for c, name := range t.entries {
		if name == actionName {
			codes = append(codes, c)
		}
	}
	return codes
}

// Len returns the number of bound codes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Actions returns the closed action set the table validates against.
// Nil when the table is unrestricted.
func (t *Table) Actions() *action.Set {
	return t.actions
}
