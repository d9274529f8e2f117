package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/remap/internal/input/action"
)

// HandlerName is the global function a script must define.
const HandlerName = "on_action"

// Script errors.
var (
	// ErrNoHandler indicates the script does not define on_action.
	ErrNoHandler = errors.New("script: missing " + HandlerName + " function")

	// ErrClosed indicates an operation on a closed subscriber.
	ErrClosed = errors.New("script: subscriber is closed")
)

// Subscriber runs a Lua script as an action subscriber.
//
// gopher-lua states are not goroutine-safe; the mutex serializes handling
// with Close. Dispatch itself is already single-threaded, so contention is
// limited to shutdown.
type Subscriber struct {
	mu sync.Mutex

	name    string
	state   *lua.LState
	handler lua.LValue
	onError func(error)

	closed bool
}

// Option configures a Subscriber.
type Option func(*Subscriber)

// WithErrorCallback sets a callback invoked when the script errors.
// Without one, script errors silently count as not-handled.
func WithErrorCallback(fn func(error)) Option {
	return func(s *Subscriber) {
		s.onError = fn
	}
}

// NewSubscriber compiles a script from source.
// The name identifies the script in error messages.
func NewSubscriber(name, source string, opts ...Option) (*Subscriber, error) {
	return newSubscriber(name, opts, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

// NewSubscriberFromFile compiles a script from a file.
func NewSubscriberFromFile(path string, opts ...Option) (*Subscriber, error) {
	return newSubscriber(path, opts, func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// newSubscriber builds a sandboxed state, runs the script body and captures
// its on_action handler.
func newSubscriber(name string, opts []Option, load func(*lua.LState) error) (*Subscriber, error) {
	s := &Subscriber{name: name}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	if err := load(L); err != nil {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", name, err)
	}

	handler := L.GetGlobal(HandlerName)
	if _, ok := handler.(*lua.LFunction); !ok {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", name, ErrNoHandler)
	}

	s.state = L
	s.handler = handler
	return s, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Intentionally not opened: io, os, debug, package.
}

// Name returns the script's identifier.
func (s *Subscriber) Name() string {
	return s.name
}

// HandleAction calls the script's on_action function with the action name
// and phase. Any script error counts as not-handled.
func (s *Subscriber) HandleAction(act action.Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	err := s.state.CallByParam(lua.P{
		Fn:      s.handler,
		NRet:    1,
		Protect: true,
	}, lua.LString(act.Name), lua.LString(act.Phase.String()))
	if err != nil {
		if s.onError != nil {
			s.onError(fmt.Errorf("script %s: %w", s.name, err))
		}
		return false
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)
	return lua.LVAsBool(ret)
}

// Close releases the Lua state. The subscriber declines all actions after
// Close; unsubscribe it from the dispatcher as well.
func (s *Subscriber) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.state.Close()
}
