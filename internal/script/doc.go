// Package script lets Lua scripts participate as action subscribers.
//
// A script defines a global on_action(name, phase) function returning true to
// consume the action. Scripts run in a state with only the safe Lua standard
// libraries opened (no io, os, debug or package), mirroring how plugins are
// sandboxed elsewhere; a script error is isolated and reported through the
// error callback, never propagated into the dispatch path.
package script
