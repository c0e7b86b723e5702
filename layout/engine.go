// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout defines the contract between the input stack and the
tiling layout engine, and provides ScrollingEngine, a reference
implementation.

Interactive gestures drive the engine through paired transactions:
a successful begin must be matched by exactly one end, with any
number of updates in between. The engine keeps at most one
interactive move and one view-offset gesture open at a time and may
close either unilaterally, which updates report through their
ongoing flag.
*/
package layout

import (
	"time"

	"driftwm.dev/f64"
	"driftwm.dev/output"
	"driftwm.dev/window"
)

// Engine is the layout surface the input stack is written against.
type Engine interface {
	// IsFloating reports whether w is positioned freely rather than
	// managed by the scrolling layout.
	IsFloating(w *window.Window) bool

	// FindPlacement returns the output and workspace index that
	// currently hold the tiled window w. It reports false when the
	// window is not placed anywhere.
	FindPlacement(w *window.Window) (*output.Output, int, bool)

	// MoveBegin opens an interactive move of w, which started on
	// out at the output-local point local. It reports false when
	// the move cannot start, in which case no transaction is open.
	MoveBegin(w *window.Window, out *output.Output, local f64.Point) bool

	// MoveUpdate applies a pointer-plane delta to the open move.
	// out and local describe the output currently under the
	// pointer. It reports whether the move is still ongoing.
	MoveUpdate(w *window.Window, delta f64.Point, out *output.Output, local f64.Point) bool

	// MoveEnd closes the open move of w.
	MoveEnd(w *window.Window)

	// ToggleFloating switches w between floating and tiled without
	// disturbing an open move of w.
	ToggleFloating(w *window.Window)

	// ViewOffsetBegin opens a view-offset gesture on the given
	// workspace of out.
	ViewOffsetBegin(out *output.Output, workspace int)

	// ViewOffsetUpdate shifts the open gesture's view offset by
	// deltaX. It returns the output whose view changed and whether
	// the gesture is still ongoing.
	ViewOffsetUpdate(deltaX float64, t time.Duration) (*output.Output, bool)

	// ViewOffsetEnd closes the open view-offset gesture. A
	// cancelled end restores the offset from before the gesture.
	ViewOffsetEnd(cancelled bool)
}
