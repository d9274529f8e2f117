package action

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Set errors
var (
	// ErrEmptyName is returned when registering an empty action name.
	ErrEmptyName = errors.New("action: empty action name")

	// ErrUnknownAction is returned when a name is not in the set.
	ErrUnknownAction = errors.New("action: unknown action")
)

// Set is the closed, application-defined group of semantic action names.
// The set is built once at configuration time; lookups are read-only after
// that, so Set performs no locking.
type Set struct {
	names map[string]struct{}
}

// NewSet creates a set containing the given action names.
// Empty names are ignored.
func NewSet(names ...string) *Set {
	s := &Set{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name != "" {
			s.names[name] = struct{}{}
		}
	}
	return s
}

// Register adds an action name to the set.
func (s *Set) Register(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	s.names[name] = struct{}{}
	return nil
}

// Contains returns true if the name is a member of the set.
func (s *Set) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Validate returns an error naming the action if it is not in the set.
func (s *Set) Validate(name string) error {
	if !s.Contains(name) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return nil
}

// Names returns the member names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of actions in the set.
func (s *Set) Len() int {
	return len(s.names)
}

// String returns a comma-separated list of the member names.
func (s *Set) String() string {
	return strings.Join(s.Names(), ",")
}
