package dispatch

import "github.com/dshills/remap/internal/input/action"

// Subscriber is the capability contract for receiving dispatched actions.
// HandleAction returns true to consume the action and stop propagation.
//
// Subscribers are tracked by identity for subscribe/unsubscribe, so the same
// value must be used for both calls. Register comparable types; pointer
// receivers are the norm.
type Subscriber interface {
	HandleAction(act action.Action) bool
}

// FuncSubscriber adapts a function to the Subscriber interface.
// It is a pointer type so each adapter has its own identity in the registry.
type FuncSubscriber struct {
	fn func(action.Action) bool
}

// SubscriberFunc wraps a function as a Subscriber.
func SubscriberFunc(fn func(action.Action) bool) *FuncSubscriber {
	return &FuncSubscriber{fn: fn}
}

// HandleAction invokes the wrapped function.
func (f *FuncSubscriber) HandleAction(act action.Action) bool {
	return f.fn(act)
}
