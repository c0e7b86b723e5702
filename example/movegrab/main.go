// SPDX-License-Identifier: Unlicense OR MIT

// Command movegrab feeds a synthetic drag through the pointer
// dispatcher and prints what the layout engine saw. It is a
// demonstration of the grab state machine, not a compositor.
package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"driftwm.dev/config"
	"driftwm.dev/cursor"
	"driftwm.dev/f64"
	"driftwm.dev/input"
	"driftwm.dev/io/pointer"
	"driftwm.dev/layout"
	"driftwm.dev/output"
	"driftwm.dev/window"
)

func main() {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	cfg := config.Default()

	out := &output.Output{Name: "DP-1", Geometry: f64.Rect(0, 0, 1920, 1080)}
	space := &output.Space{}
	space.Add(out)

	eng := layout.NewScrollingEngine()
	eng.Log = log
	ws := eng.AddWorkspace(out)
	term := window.New(1, "terminal", f64.Pt(640, 480))
	editor := window.New(2, "editor", f64.Pt(640, 480))
	eng.AddWindow(term, out, ws)
	eng.AddWindow(editor, out, ws)

	st := &input.State{
		Outputs: space,
		Layout:  eng,
		Cursor:  &cursor.Manager{},
		Log:     log,
		QueueRedraw: func(o *output.Output) {
			if o != nil {
				log.WithField("output", o.Name).Debug("redraw queued")
			} else {
				log.Debug("redraw queued for all outputs")
			}
		},
		Options: cfg.Input,
	}
	ptr := input.NewPointer()

	// Press on the terminal window and drag downward: the gesture
	// resolves to a view-offset scroll.
	var serial uint32
	now := time.Duration(0)
	event := func(loc f64.Point) *pointer.MotionEvent {
		serial++
		now += 16 * time.Millisecond
		return &pointer.MotionEvent{Location: loc, Serial: serial, Time: now}
	}

	start := f64.Pt(400, 300)
	ptr.Motion(st, nil, event(start))
	ptr.Button(st, &pointer.ButtonEvent{Button: pointer.BtnLeft, State: pointer.Pressed, Serial: serial, Time: now})

	grab, ok := input.NewMoveGrab(st, pointer.GrabStartData{
		Location: start,
		Button:   pointer.BtnLeft,
		Serial:   serial,
		Time:     now,
	}, term)
	if !ok {
		log.Fatal("no output under the drag start")
	}
	ptr.SetGrab(st, grab)

	for _, loc := range []f64.Point{
		{X: 402, Y: 304}, // inside the dead zone
		{X: 404, Y: 312}, // recognized: vertical-dominant on a tiled window
		{X: 380, Y: 330},
		{X: 300, Y: 340},
	} {
		ptr.Motion(st, nil, event(loc))
	}
	ptr.Button(st, &pointer.ButtonEvent{Button: pointer.BtnLeft, State: pointer.Released, Serial: serial, Time: now})

	log.WithField("offset", eng.ViewOffset(out, ws)).Info("view offset after drag")
	for eng.Advance() {
	}
	log.WithField("offset", eng.ViewOffset(out, ws)).Info("view offset after snap")
}
