// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input owns the seat pointer and its grabs.

Pointer events arrive from the backend one at a time on the
compositor's event loop and are dispatched to exactly one grab: an
installed interactive grab, or the default grab that passes events
through to the focused client. Grabs drive the layout engine and
cursor feedback through the State bundle and never block.
*/
package input

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"driftwm.dev/cursor"
	"driftwm.dev/layout"
	"driftwm.dev/output"
)

// DefaultDragThreshold is the cumulative pointer displacement, in
// logical units, past which a drag is recognized as a gesture.
const DefaultDragThreshold = 8.0

// TogglePolicy selects when the complementary mouse button toggles
// the dragged window between floating and tiled.
type TogglePolicy uint8

const (
	// ToggleMoveOnly applies the toggle only once the drag has
	// resolved to a window move.
	ToggleMoveOnly TogglePolicy = iota
	// ToggleAlways applies the toggle in every gesture state.
	ToggleAlways
)

// Options are the grab tunables, typically decoded from the
// configuration file. The zero value selects the defaults.
type Options struct {
	// DragThreshold overrides DefaultDragThreshold when positive.
	DragThreshold float64 `toml:"drag-threshold"`
	// FloatingToggle selects the complementary-button policy.
	FloatingToggle TogglePolicy `toml:"floating-toggle"`
}

// State bundles the collaborators a grab needs. It is shared by all
// grabs and lives for the compositor's lifetime.
type State struct {
	Outputs output.Locator
	Layout  layout.Engine
	Cursor  cursor.Setter

	// Log receives per-session lifecycle records at debug level.
	// Nil falls back to the logrus standard logger.
	Log *logrus.Logger

	// QueueRedraw schedules a repaint of out; a nil out requests
	// all outputs. May be nil when the host drives redraws itself.
	QueueRedraw func(out *output.Output)

	Options Options
}

func (st *State) dragThreshold() float64 {
	if st.Options.DragThreshold > 0 {
		return st.Options.DragThreshold
	}
	return DefaultDragThreshold
}

func (st *State) queueRedraw(out *output.Output) {
	if st.QueueRedraw != nil {
		st.QueueRedraw(out)
	}
}

func (st *State) logger() *logrus.Logger {
	if st.Log != nil {
		return st.Log
	}
	return logrus.StandardLogger()
}

// UnmarshalText decodes a policy name, "move-only" or "always".
func (p *TogglePolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "move-only":
		*p = ToggleMoveOnly
	case "always":
		*p = ToggleAlways
	default:
		return fmt.Errorf("input: unknown floating-toggle policy %q", text)
	}
	return nil
}

func (p TogglePolicy) String() string {
	switch p {
	case ToggleMoveOnly:
		return "move-only"
	case ToggleAlways:
		return "always"
	default:
		panic("invalid TogglePolicy")
	}
}
