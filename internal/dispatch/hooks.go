package dispatch

import "github.com/dshills/remap/internal/input/action"

// PreDispatchHook observes an action before it is offered to subscribers.
// Returning false cancels the action; no subscriber sees it and no
// unhandled-action diagnostic is recorded. Hooks may mutate the action,
// which is how transient remapping layers (e.g. a "press any key" prompt)
// intercept input without touching the binding table.
type PreDispatchHook interface {
	PreDispatch(act *action.Action) bool
}

// PreDispatchFunc adapts a function to the PreDispatchHook interface.
type PreDispatchFunc func(act *action.Action) bool

// PreDispatch invokes the function.
func (f PreDispatchFunc) PreDispatch(act *action.Action) bool {
	return f(act)
}

// PostDispatchHook observes an action after propagation completes.
type PostDispatchHook interface {
	PostDispatch(act action.Action, handled bool)
}

// PostDispatchFunc adapts a function to the PostDispatchHook interface.
type PostDispatchFunc func(act action.Action, handled bool)

// PostDispatch invokes the function.
func (f PostDispatchFunc) PostDispatch(act action.Action, handled bool) {
	f(act, handled)
}
