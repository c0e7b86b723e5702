// SPDX-License-Identifier: Unlicense OR MIT

/*
Package window provides non-owning references to compositor windows.

A *Window is shared between the layout, the input stack and any
in-flight grab. None of them owns the window's lifetime: the window
can be closed by unrelated activity between any two events, so every
holder re-checks Alive before acting on the reference.
*/
package window

import "driftwm.dev/f64"

// ID identifies a window for logging and bookkeeping.
type ID uint64

// A Window is a liveness-checked reference to a toplevel window.
type Window struct {
	id    ID
	title string
	size  f64.Point
	alive bool
}

// New returns a live window.
func New(id ID, title string, size f64.Point) *Window {
	return &Window{id: id, title: title, size: size, alive: true}
}

// ID returns the window's identifier.
func (w *Window) ID() ID {
	return w.id
}

// Title returns the window's title.
func (w *Window) Title() string {
	return w.title
}

// Size returns the window's logical size.
func (w *Window) Size() f64.Point {
	return w.size
}

// Alive reports whether the window still exists. Holders of a
// *Window must check this before every use.
func (w *Window) Alive() bool {
	return w != nil && w.alive
}

// Close marks the window destroyed. Existing references stay valid
// to hold but report Alive() == false.
func (w *Window) Close() {
	w.alive = false
}
