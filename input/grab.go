// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"github.com/sirupsen/logrus"

	"driftwm.dev/f64"
	"driftwm.dev/io/pointer"
)

// FocusTarget receives the pointer events that reach a client. The
// wire protocol behind it is not this package's concern.
type FocusTarget interface {
	Motion(ev *pointer.MotionEvent)
	RelativeMotion(ev *pointer.RelativeMotionEvent)
	Button(ev *pointer.ButtonEvent)
	Axis(f pointer.AxisFrame)
	Frame()
}

// GestureTarget is implemented by focus targets that also accept
// touchpad gesture events.
type GestureTarget interface {
	SwipeBegin(ev *pointer.SwipeBeginEvent)
	SwipeUpdate(ev *pointer.SwipeUpdateEvent)
	SwipeEnd(ev *pointer.SwipeEndEvent)
	PinchBegin(ev *pointer.PinchBeginEvent)
	PinchUpdate(ev *pointer.PinchUpdateEvent)
	PinchEnd(ev *pointer.PinchEndEvent)
	HoldBegin(ev *pointer.HoldBeginEvent)
	HoldEnd(ev *pointer.HoldEndEvent)
}

// A Grab owns pointer-event delivery exclusively while installed.
// One implementation exists per grab kind; the pointer dispatches to
// exactly one grab at a time.
//
// For motion and relative motion the dispatcher suggests the focus
// target under the pointer; the grab decides whether to honor it by
// passing it on through the handle, or to suppress client focus by
// forwarding nil.
type Grab interface {
	Motion(st *State, h *Handle, under FocusTarget, ev *pointer.MotionEvent)
	RelativeMotion(st *State, h *Handle, under FocusTarget, ev *pointer.RelativeMotionEvent)
	Button(st *State, h *Handle, ev *pointer.ButtonEvent)
	Axis(st *State, h *Handle, f pointer.AxisFrame)
	Frame(st *State, h *Handle)
	SwipeBegin(st *State, h *Handle, ev *pointer.SwipeBeginEvent)
	SwipeUpdate(st *State, h *Handle, ev *pointer.SwipeUpdateEvent)
	SwipeEnd(st *State, h *Handle, ev *pointer.SwipeEndEvent)
	PinchBegin(st *State, h *Handle, ev *pointer.PinchBeginEvent)
	PinchUpdate(st *State, h *Handle, ev *pointer.PinchUpdateEvent)
	PinchEnd(st *State, h *Handle, ev *pointer.PinchEndEvent)
	HoldBegin(st *State, h *Handle, ev *pointer.HoldBeginEvent)
	HoldEnd(st *State, h *Handle, ev *pointer.HoldEndEvent)

	// StartData returns the grab's originating data, nil for the
	// default grab.
	StartData() *pointer.GrabStartData

	// Unset is invoked exactly once when the grab is torn down,
	// whether by the host or by the grab itself.
	Unset(st *State)
}

// Pointer is the seat pointer: current location, pressed buttons,
// focus and the installed grab. All methods run on the compositor's
// event loop; none of them blocks.
type Pointer struct {
	location f64.Point
	pressed  []uint32
	focus    FocusTarget
	grab     Grab
}

// NewPointer returns a pointer with the default pass-through grab.
func NewPointer() *Pointer {
	return &Pointer{}
}

// Location returns the pointer-plane position from the most recent
// motion event.
func (p *Pointer) Location() f64.Point {
	return p.location
}

// Pressed returns the currently held button codes.
func (p *Pointer) Pressed() []uint32 {
	return p.pressed
}

// HasGrab reports whether an interactive grab is installed.
func (p *Pointer) HasGrab() bool {
	return p.grab != nil
}

// SetGrab installs g, tearing down any previous grab first.
func (p *Pointer) SetGrab(st *State, g Grab) {
	p.UnsetGrab(st)
	p.grab = g
}

// UnsetGrab restores the default grab. The outgoing grab's Unset
// runs exactly once.
func (p *Pointer) UnsetGrab(st *State) {
	g := p.grab
	if g == nil {
		return
	}
	p.grab = nil
	g.Unset(st)
}

func (p *Pointer) active() Grab {
	if p.grab != nil {
		return p.grab
	}
	return defaultGrab{}
}

func (p *Pointer) handle() *Handle {
	return &Handle{p: p}
}

// Motion dispatches an absolute motion event. under is the focus
// target beneath the pointer, nil when there is none.
func (p *Pointer) Motion(st *State, under FocusTarget, ev *pointer.MotionEvent) {
	p.active().Motion(st, p.handle(), under, ev)
}

// RelativeMotion dispatches a relative motion event.
func (p *Pointer) RelativeMotion(st *State, under FocusTarget, ev *pointer.RelativeMotionEvent) {
	p.active().RelativeMotion(st, p.handle(), under, ev)
}

// Button dispatches a button event. The pressed set is updated
// before the grab sees the event so that Handle.CurrentPressed
// reflects it.
func (p *Pointer) Button(st *State, ev *pointer.ButtonEvent) {
	switch ev.State {
	case pointer.Pressed:
		if !containsButton(p.pressed, ev.Button) {
			p.pressed = append(p.pressed, ev.Button)
		}
	case pointer.Released:
		for i, b := range p.pressed {
			if b == ev.Button {
				p.pressed = append(p.pressed[:i], p.pressed[i+1:]...)
				break
			}
		}
	}
	p.active().Button(st, p.handle(), ev)
}

// Axis dispatches a scroll axis frame.
func (p *Pointer) Axis(st *State, f pointer.AxisFrame) {
	p.active().Axis(st, p.handle(), f)
}

// Frame dispatches an event-group frame marker.
func (p *Pointer) Frame(st *State) {
	p.active().Frame(st, p.handle())
}

// Touchpad gesture dispatch.

func (p *Pointer) SwipeBegin(st *State, ev *pointer.SwipeBeginEvent) {
	p.active().SwipeBegin(st, p.handle(), ev)
}

func (p *Pointer) SwipeUpdate(st *State, ev *pointer.SwipeUpdateEvent) {
	p.active().SwipeUpdate(st, p.handle(), ev)
}

func (p *Pointer) SwipeEnd(st *State, ev *pointer.SwipeEndEvent) {
	p.active().SwipeEnd(st, p.handle(), ev)
}

func (p *Pointer) PinchBegin(st *State, ev *pointer.PinchBeginEvent) {
	p.active().PinchBegin(st, p.handle(), ev)
}

func (p *Pointer) PinchUpdate(st *State, ev *pointer.PinchUpdateEvent) {
	p.active().PinchUpdate(st, p.handle(), ev)
}

func (p *Pointer) PinchEnd(st *State, ev *pointer.PinchEndEvent) {
	p.active().PinchEnd(st, p.handle(), ev)
}

func (p *Pointer) HoldBegin(st *State, ev *pointer.HoldBeginEvent) {
	p.active().HoldBegin(st, p.handle(), ev)
}

func (p *Pointer) HoldEnd(st *State, ev *pointer.HoldEndEvent) {
	p.active().HoldEnd(st, p.handle(), ev)
}

// Handle is the inner forwarding surface handed to grab callbacks.
// Through it a grab reaches the underlying pointer machinery without
// being able to re-enter grab dispatch.
type Handle struct {
	p *Pointer
}

// Motion updates the pointer location, moves pointer focus to focus
// and delivers the event to it. A nil focus clears client focus,
// which is how an interactive grab keeps events away from clients.
func (h *Handle) Motion(st *State, focus FocusTarget, ev *pointer.MotionEvent) {
	h.p.location = ev.Location
	h.p.focus = focus
	if focus != nil {
		focus.Motion(ev)
	}
}

// RelativeMotion delivers the event to focus without moving pointer
// focus or the tracked location.
func (h *Handle) RelativeMotion(st *State, focus FocusTarget, ev *pointer.RelativeMotionEvent) {
	if focus != nil {
		focus.RelativeMotion(ev)
	}
}

// Button delivers the event to the current focus target.
func (h *Handle) Button(st *State, ev *pointer.ButtonEvent) {
	if h.p.focus != nil {
		h.p.focus.Button(ev)
	}
}

// Axis delivers the frame to the current focus target.
func (h *Handle) Axis(st *State, f pointer.AxisFrame) {
	if h.p.focus != nil {
		h.p.focus.Axis(f)
	}
}

// Frame delivers the frame marker to the current focus target.
func (h *Handle) Frame(st *State) {
	if h.p.focus != nil {
		h.p.focus.Frame()
	}
}

func (h *Handle) gestureFocus() GestureTarget {
	if g, ok := h.p.focus.(GestureTarget); ok {
		return g
	}
	return nil
}

func (h *Handle) SwipeBegin(st *State, ev *pointer.SwipeBeginEvent) {
	if g := h.gestureFocus(); g != nil {
		g.SwipeBegin(ev)
	}
}

func (h *Handle) SwipeUpdate(st *State, ev *pointer.SwipeUpdateEvent) {
	if g := h.gestureFocus(); g != nil {
		g.SwipeUpdate(ev)
	}
}

func (h *Handle) SwipeEnd(st *State, ev *pointer.SwipeEndEvent) {
	if g := h.gestureFocus(); g != nil {
		g.SwipeEnd(ev)
	}
}

func (h *Handle) PinchBegin(st *State, ev *pointer.PinchBeginEvent) {
	if g := h.gestureFocus(); g != nil {
		g.PinchBegin(ev)
	}
}

func (h *Handle) PinchUpdate(st *State, ev *pointer.PinchUpdateEvent) {
	if g := h.gestureFocus(); g != nil {
		g.PinchUpdate(ev)
	}
}

func (h *Handle) PinchEnd(st *State, ev *pointer.PinchEndEvent) {
	if g := h.gestureFocus(); g != nil {
		g.PinchEnd(ev)
	}
}

func (h *Handle) HoldBegin(st *State, ev *pointer.HoldBeginEvent) {
	if g := h.gestureFocus(); g != nil {
		g.HoldBegin(ev)
	}
}

func (h *Handle) HoldEnd(st *State, ev *pointer.HoldEndEvent) {
	if g := h.gestureFocus(); g != nil {
		g.HoldEnd(ev)
	}
}

// CurrentPressed returns the button codes held after the event being
// processed.
func (h *Handle) CurrentPressed() []uint32 {
	return h.p.pressed
}

// UnsetGrab tears down the installed grab from inside one of its own
// callbacks. serial and t identify the triggering event.
func (h *Handle) UnsetGrab(st *State, serial uint32, t time.Duration) {
	st.logger().WithFields(logrus.Fields{
		"serial": serial,
		"time":   t,
	}).Debug("input: grab released")
	h.p.UnsetGrab(st)
}

// defaultGrab passes every event through to the suggested focus.
type defaultGrab struct{}

func (defaultGrab) Motion(st *State, h *Handle, under FocusTarget, ev *pointer.MotionEvent) {
	h.Motion(st, under, ev)
}

func (defaultGrab) RelativeMotion(st *State, h *Handle, under FocusTarget, ev *pointer.RelativeMotionEvent) {
	h.RelativeMotion(st, under, ev)
}

func (defaultGrab) Button(st *State, h *Handle, ev *pointer.ButtonEvent) {
	h.Button(st, ev)
}

func (defaultGrab) Axis(st *State, h *Handle, f pointer.AxisFrame) {
	h.Axis(st, f)
}

func (defaultGrab) Frame(st *State, h *Handle) {
	h.Frame(st)
}

func (defaultGrab) SwipeBegin(st *State, h *Handle, ev *pointer.SwipeBeginEvent) {
	h.SwipeBegin(st, ev)
}

func (defaultGrab) SwipeUpdate(st *State, h *Handle, ev *pointer.SwipeUpdateEvent) {
	h.SwipeUpdate(st, ev)
}

func (defaultGrab) SwipeEnd(st *State, h *Handle, ev *pointer.SwipeEndEvent) {
	h.SwipeEnd(st, ev)
}

func (defaultGrab) PinchBegin(st *State, h *Handle, ev *pointer.PinchBeginEvent) {
	h.PinchBegin(st, ev)
}

func (defaultGrab) PinchUpdate(st *State, h *Handle, ev *pointer.PinchUpdateEvent) {
	h.PinchUpdate(st, ev)
}

func (defaultGrab) PinchEnd(st *State, h *Handle, ev *pointer.PinchEndEvent) {
	h.PinchEnd(st, ev)
}

func (defaultGrab) HoldBegin(st *State, h *Handle, ev *pointer.HoldBeginEvent) {
	h.HoldBegin(st, ev)
}

func (defaultGrab) HoldEnd(st *State, h *Handle, ev *pointer.HoldEndEvent) {
	h.HoldEnd(st, ev)
}

func (defaultGrab) StartData() *pointer.GrabStartData {
	return nil
}

func (defaultGrab) Unset(st *State) {}

func containsButton(buttons []uint32, code uint32) bool {
	for _, b := range buttons {
		if b == code {
			return true
		}
	}
	return false
}
