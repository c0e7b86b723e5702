// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"math"

	"github.com/sirupsen/logrus"

	"driftwm.dev/f64"
	"driftwm.dev/io/pointer"
	"driftwm.dev/output"
	"driftwm.dev/window"
)

// gestureState is the recognition state of a MoveGrab. Transitions
// are monotonic: once a drag resolves to Move or ViewOffset it never
// changes again.
type gestureState uint8

const (
	gestureRecognizing gestureState = iota
	gestureMove
	gestureViewOffset
)

// MoveGrab is the interactive grab installed when a drag begins on a
// window. It watches the accumulating displacement to decide whether
// the user is moving the window or scrolling the workspace view, and
// drives the matching layout transaction until the originating
// button is released or the gesture can no longer continue.
type MoveGrab struct {
	startData        pointer.GrabStartData
	startOutput      *output.Output
	startPosInOutput f64.Point
	lastLocation     f64.Point
	window           *window.Window
	gesture          gestureState
	policy           TogglePolicy
	threshold        float64
}

// NewMoveGrab prepares a grab for a drag that started on w. It
// reports false when no output is under the start location, in which
// case the drag does not become interactive.
func NewMoveGrab(st *State, startData pointer.GrabStartData, w *window.Window) (*MoveGrab, bool) {
	out, posInOutput, ok := st.Outputs.OutputUnder(startData.Location)
	if !ok {
		return nil, false
	}
	return &MoveGrab{
		startData:        startData,
		startOutput:      out,
		startPosInOutput: posInOutput,
		lastLocation:     startData.Location,
		window:           w,
		gesture:          gestureRecognizing,
		policy:           st.Options.FloatingToggle,
		threshold:        st.dragThreshold(),
	}, true
}

func (g *MoveGrab) onUngrab(st *State) {
	switch g.gesture {
	case gestureRecognizing:
		// The engine's transaction bookkeeping must stay balanced
		// even though recognition never completed: open and close a
		// degenerate zero-displacement move.
		if st.Layout.MoveBegin(g.window, g.startOutput, g.startPosInOutput) {
			st.Layout.MoveEnd(g.window)
		}
	case gestureMove:
		st.Layout.MoveEnd(g.window)
	case gestureViewOffset:
		st.Layout.ViewOffsetEnd(false)
	}

	// FIXME: only redraw the outputs the gesture touched.
	st.queueRedraw(nil)
	st.Cursor.Reset()

	st.logger().WithFields(logrus.Fields{
		"window":  g.window.ID(),
		"gesture": g.gesture,
	}).Debug("input: interactive grab ended")
}

// Motion implements Grab.
func (g *MoveGrab) Motion(st *State, h *Handle, _ FocusTarget, ev *pointer.MotionEvent) {
	// While the grab is active, no client has pointer focus.
	h.Motion(st, nil, ev)

	if g.window.Alive() {
		out, posInOutput, ok := st.Outputs.OutputUnder(ev.Location)
		if !ok {
			// A momentary excursion off all outputs. Keep the
			// session; the next on-output event resumes it.
			return
		}
		delta := ev.Location.Sub(g.lastLocation)
		g.lastLocation = ev.Location

		if g.gesture == gestureRecognizing {
			c := ev.Location.Sub(g.startData.Location)

			// Check if the gesture moved far enough to decide.
			if c.X*c.X+c.Y*c.Y >= g.threshold*g.threshold {
				if st.Layout.IsFloating(g.window) || math.Abs(c.X) > math.Abs(c.Y) {
					if !st.Layout.MoveBegin(g.window, g.startOutput, g.startPosInOutput) {
						// Can no longer start the move.
						h.UnsetGrab(st, ev.Serial, ev.Time)
						return
					}
					g.gesture = gestureMove
					st.Cursor.Set(pointer.CursorMove)
				} else {
					wsOut, wsIdx, ok := st.Layout.FindPlacement(g.window)
					if !ok {
						// The window is no longer placed anywhere.
						h.UnsetGrab(st, ev.Serial, ev.Time)
						return
					}
					st.Layout.ViewOffsetBegin(wsOut, wsIdx)
					g.gesture = gestureViewOffset
					st.Cursor.Set(pointer.CursorAllScroll)
				}

				// Apply the whole delta that accumulated during
				// recognition, or the window would jump by it.
				delta = c

				st.logger().WithFields(logrus.Fields{
					"window":  g.window.ID(),
					"gesture": g.gesture,
				}).Debug("input: drag gesture recognized")
			}
		}

		switch g.gesture {
		case gestureRecognizing:
			return
		case gestureMove:
			if st.Layout.MoveUpdate(g.window, delta, out, posInOutput) {
				st.queueRedraw(out)
				return
			}
		case gestureViewOffset:
			// Dragging right moves the view left.
			if affected, ongoing := st.Layout.ViewOffsetUpdate(-delta.X, ev.Time); ongoing {
				st.queueRedraw(affected)
				return
			}
		}
	}

	// The gesture is no longer ongoing.
	h.UnsetGrab(st, ev.Serial, ev.Time)
}

// RelativeMotion implements Grab.
func (g *MoveGrab) RelativeMotion(st *State, h *Handle, _ FocusTarget, ev *pointer.RelativeMotionEvent) {
	// While the grab is active, no client has pointer focus.
	h.RelativeMotion(st, nil, ev)
}

// Button implements Grab.
func (g *MoveGrab) Button(st *State, h *Handle, ev *pointer.ButtonEvent) {
	h.Button(st, ev)

	// When moving with the left button, right toggles floating, and
	// vice versa.
	toggleButton := pointer.BtnRight
	if g.startData.Button != pointer.BtnLeft {
		toggleButton = pointer.BtnLeft
	}
	if ev.Button == toggleButton && ev.State == pointer.Pressed && g.toggleApplies() {
		st.Layout.ToggleFloating(g.window)
	}

	if !containsButton(h.CurrentPressed(), g.startData.Button) {
		// The button that initiated the grab was released.
		h.UnsetGrab(st, ev.Serial, ev.Time)
	}
}

func (g *MoveGrab) toggleApplies() bool {
	if g.policy == ToggleAlways {
		return true
	}
	return g.gesture == gestureMove
}

// Axis implements Grab.
func (g *MoveGrab) Axis(st *State, h *Handle, f pointer.AxisFrame) {
	h.Axis(st, f)
}

// Frame implements Grab.
func (g *MoveGrab) Frame(st *State, h *Handle) {
	h.Frame(st)
}

// SwipeBegin implements Grab.
func (g *MoveGrab) SwipeBegin(st *State, h *Handle, ev *pointer.SwipeBeginEvent) {
	h.SwipeBegin(st, ev)
}

// SwipeUpdate implements Grab.
func (g *MoveGrab) SwipeUpdate(st *State, h *Handle, ev *pointer.SwipeUpdateEvent) {
	h.SwipeUpdate(st, ev)
}

// SwipeEnd implements Grab.
func (g *MoveGrab) SwipeEnd(st *State, h *Handle, ev *pointer.SwipeEndEvent) {
	h.SwipeEnd(st, ev)
}

// PinchBegin implements Grab.
func (g *MoveGrab) PinchBegin(st *State, h *Handle, ev *pointer.PinchBeginEvent) {
	h.PinchBegin(st, ev)
}

// PinchUpdate implements Grab.
func (g *MoveGrab) PinchUpdate(st *State, h *Handle, ev *pointer.PinchUpdateEvent) {
	h.PinchUpdate(st, ev)
}

// PinchEnd implements Grab.
func (g *MoveGrab) PinchEnd(st *State, h *Handle, ev *pointer.PinchEndEvent) {
	h.PinchEnd(st, ev)
}

// HoldBegin implements Grab.
func (g *MoveGrab) HoldBegin(st *State, h *Handle, ev *pointer.HoldBeginEvent) {
	h.HoldBegin(st, ev)
}

// HoldEnd implements Grab.
func (g *MoveGrab) HoldEnd(st *State, h *Handle, ev *pointer.HoldEndEvent) {
	h.HoldEnd(st, ev)
}

// StartData implements Grab.
func (g *MoveGrab) StartData() *pointer.GrabStartData {
	return &g.startData
}

// Unset implements Grab.
func (g *MoveGrab) Unset(st *State) {
	g.onUngrab(st)
}

func (s gestureState) String() string {
	switch s {
	case gestureRecognizing:
		return "recognizing"
	case gestureMove:
		return "move"
	case gestureViewOffset:
		return "view-offset"
	default:
		panic("invalid gestureState")
	}
}
