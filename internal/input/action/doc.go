// Package action models semantic actions: application-level logical commands
// decoupled from any specific physical input.
//
// An Action is a value carrying the action name plus the phase and source of
// the input that produced it. A Set is the closed, application-defined group
// of action names, fixed at configuration time; binding tables can validate
// against a Set so that a typo in a bindings file is caught at load time
// instead of surfacing as a never-dispatched action.
package action
