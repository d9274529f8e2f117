// Package terminal adapts a tcell screen into the raw input event stream the
// dispatcher consumes.
//
// It is the boundary between the host input library and the remapping core:
// tcell key and mouse events are translated into code.Event values and fed to
// a Handler one at a time, in arrival order. Terminals only report key
// presses, so key events always carry the pressed phase; mouse button
// transitions are diffed against the previous button state to synthesize
// distinct pressed and released events.
package terminal
