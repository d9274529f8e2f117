// Package dispatch routes raw input events through the binding table to an
// ordered chain of subscribers.
//
// The Dispatcher resolves each raw input code to a semantic action and offers
// the action to subscribers in most-recently-subscribed-first order; the
// first subscriber that reports handled stops propagation. Subscribers attach
// when they become active (a screen opens) and detach when they become
// inactive, and may do either from inside their own handling call: dispatch
// iterates a snapshot taken at the start, so mid-dispatch mutation only
// affects the next event.
//
// Nothing in this package aborts the host process. Unbound codes, unhandled
// actions and panicking subscribers are absorbed locally and surfaced as
// diagnostics.
package dispatch
