// Package code models raw input codes: the physical key, mouse button, and
// stick-direction signals reported by a host input source, before any
// remapping to semantic actions.
//
// A Code identifies one physical signal. Codes are comparable values and are
// used directly as binding table keys. The package also provides Phase
// (pressed/released/repeat), Event (a Code plus a Phase and timestamp), and a
// parser for human-readable code specifications such as "C-s", "Up" and
// "MouseLeft".
package code
