// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer contains the event model for the seat pointer:
the events a grab receives, the button codes and cursor icons it
works with, and the data recorded when a grab starts.

Events carry locations in the global pointer plane. Translation
into output-local coordinates is the output locator's job.
*/
package pointer

import (
	"strings"
	"time"

	"driftwm.dev/f64"
)

// Buttons is a set of pressed mouse buttons.
type Buttons uint8

// ButtonState is the direction of a button event.
type ButtonState uint8

// Cursor denotes a pre-defined cursor shape. The names correspond
// to CSS pointer naming.
type Cursor uint8

// Linux evdev button codes, as delivered by libinput-style backends.
const (
	BtnLeft   uint32 = 0x110
	BtnRight  uint32 = 0x111
	BtnMiddle uint32 = 0x112
)

const (
	// ButtonPrimary is the left mouse button.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
	// ButtonTertiary is the middle mouse button.
	ButtonTertiary
)

const (
	// Released button state.
	Released ButtonState = iota
	// Pressed button state.
	Pressed
)

const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorMove is for content being moved.
	// Usually displayed as crossed arrows.
	CursorMove
	// CursorAllScroll is for indicating scrolling in all directions.
	// Usually displayed as arrows to all four directions.
	CursorAllScroll
	// CursorGrabbing is for content that is being grabbed (dragged to be moved).
	// Usually displayed as a closed hand.
	CursorGrabbing
)

// GrabStartData records the pointer state at the moment a grab is
// installed. It stays immutable for the grab's lifetime.
type GrabStartData struct {
	// Location is the pointer-plane position at grab start.
	Location f64.Point
	// Button is the code of the button that initiated the grab.
	Button uint32
	// Serial of the initiating event.
	Serial uint32
	// Time of the initiating event. The timestamp is relative to
	// an undefined base.
	Time time.Duration
}

// MotionEvent is an absolute pointer motion.
type MotionEvent struct {
	// Location is the new position in the global pointer plane.
	Location f64.Point
	Serial   uint32
	Time     time.Duration
}

// RelativeMotionEvent is an unaccelerated motion delta, delivered
// alongside MotionEvent for clients that want raw input.
type RelativeMotionEvent struct {
	Delta f64.Point
	Time  time.Duration
}

// ButtonEvent is a press or release of a pointer button.
type ButtonEvent struct {
	Button uint32
	State  ButtonState
	Serial uint32
	Time   time.Duration
}

// AxisSource describes what generated an axis event.
type AxisSource uint8

const (
	AxisWheel AxisSource = iota
	AxisFinger
	AxisContinuous
)

// AxisFrame is one frame of scroll axis motion.
type AxisFrame struct {
	Horizontal float64
	Vertical   float64
	Source     AxisSource
	Time       time.Duration
}

// Touchpad gesture events. The grab forwards these verbatim; only
// the default grab's focus target interprets them.
type (
	SwipeBeginEvent struct {
		Fingers uint32
		Serial  uint32
		Time    time.Duration
	}
	SwipeUpdateEvent struct {
		Delta f64.Point
		Time  time.Duration
	}
	SwipeEndEvent struct {
		Cancelled bool
		Serial    uint32
		Time      time.Duration
	}
	PinchBeginEvent struct {
		Fingers uint32
		Serial  uint32
		Time    time.Duration
	}
	PinchUpdateEvent struct {
		Delta    f64.Point
		Scale    float64
		Rotation float64
		Time     time.Duration
	}
	PinchEndEvent struct {
		Cancelled bool
		Serial    uint32
		Time      time.Duration
	}
	HoldBeginEvent struct {
		Fingers uint32
		Serial  uint32
		Time    time.Duration
	}
	HoldEndEvent struct {
		Cancelled bool
		Serial    uint32
		Time      time.Duration
	}
)

// Contain reports whether the set b contains all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

// ButtonFor maps an evdev button code to its Buttons bit, or 0 for
// codes outside the primary three.
func ButtonFor(code uint32) Buttons {
	switch code {
	case BtnLeft:
		return ButtonPrimary
	case BtnRight:
		return ButtonSecondary
	case BtnMiddle:
		return ButtonTertiary
	default:
		return 0
	}
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (s ButtonState) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	default:
		panic("invalid ButtonState")
	}
}

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorMove:
		return "move"
	case CursorAllScroll:
		return "all-scroll"
	case CursorGrabbing:
		return "grabbing"
	default:
		panic("invalid Cursor")
	}
}
