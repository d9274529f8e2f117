package dispatch

import "errors"

// Dispatch errors.
var (
	// ErrNilSubscriber indicates a nil subscriber was passed to Subscribe.
	ErrNilSubscriber = errors.New("dispatch: subscriber cannot be nil")

	// ErrNilBindings indicates a nil binding table was passed to SetBindings.
	ErrNilBindings = errors.New("dispatch: binding table cannot be nil")

	// ErrSubscriberPanic indicates a subscriber panicked while handling.
	ErrSubscriberPanic = errors.New("dispatch: subscriber panic")
)

// PanicError wraps a recovered subscriber panic with its stack trace.
type PanicError struct {
	// Action is the action being handled when the panic occurred.
	Action string

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "subscriber panic handling " + e.Action
}

// Is allows errors.Is to match PanicError with ErrSubscriberPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrSubscriberPanic
}
