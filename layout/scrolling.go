// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/sirupsen/logrus"

	"driftwm.dev/f64"
	"driftwm.dev/output"
	"driftwm.dev/window"
)

// Spring parameters for the view snap animation, tuned for a frame
// of animation per output refresh at 60Hz.
const (
	snapFrequency = 20.0
	snapDamping   = 1.0
)

// DefaultColumnWidth is the stride the view offset snaps to.
const DefaultColumnWidth = 640.0

// ScrollingEngine is a minimal scrolling-column layout: each output
// holds workspaces, each workspace a row of columns scrolled by a
// view offset. It implements Engine.
type ScrollingEngine struct {
	// ColumnWidth is the snap stride for view offsets.
	ColumnWidth float64
	// Log receives protocol-misuse warnings. Nil disables logging.
	Log *logrus.Logger

	spring     harmonica.Spring
	workspaces map[*output.Output][]*workspace
	placements map[*window.Window]placement
	floating   map[*window.Window]f64.Point

	move   *moveState
	offset *offsetGesture
}

type placement struct {
	out       *output.Output
	workspace int
}

type workspace struct {
	windows    []*window.Window
	viewOffset float64

	// Snap animation state.
	snapping bool
	snapVel  float64
	snapTo   float64
}

type moveState struct {
	win   *window.Window
	out   *output.Output
	local f64.Point
}

type offsetGesture struct {
	out         *output.Output
	workspace   int
	startOffset float64
	lastTime    time.Duration
}

// NewScrollingEngine returns an empty engine.
func NewScrollingEngine() *ScrollingEngine {
	return &ScrollingEngine{
		ColumnWidth: DefaultColumnWidth,
		spring:      harmonica.NewSpring(harmonica.FPS(60), snapFrequency, snapDamping),
		workspaces:  make(map[*output.Output][]*workspace),
		placements:  make(map[*window.Window]placement),
		floating:    make(map[*window.Window]f64.Point),
	}
}

func (e *ScrollingEngine) warnf(format string, args ...interface{}) {
	if e.Log != nil {
		e.Log.Warnf(format, args...)
	}
}

// AddWorkspace appends a workspace to out and returns its index.
func (e *ScrollingEngine) AddWorkspace(out *output.Output) int {
	e.workspaces[out] = append(e.workspaces[out], &workspace{})
	return len(e.workspaces[out]) - 1
}

// AddWindow places w as a new column on the given workspace of out.
func (e *ScrollingEngine) AddWindow(w *window.Window, out *output.Output, idx int) {
	ws := e.workspace(out, idx)
	if ws == nil {
		e.warnf("layout: AddWindow to missing workspace %d", idx)
		return
	}
	ws.windows = append(ws.windows, w)
	e.placements[w] = placement{out: out, workspace: idx}
}

// RemoveWindow drops w from the layout entirely.
func (e *ScrollingEngine) RemoveWindow(w *window.Window) {
	if p, ok := e.placements[w]; ok {
		if ws := e.workspace(p.out, p.workspace); ws != nil {
			for i, win := range ws.windows {
				if win == w {
					ws.windows = append(ws.windows[:i], ws.windows[i+1:]...)
					break
				}
			}
		}
	}
	delete(e.placements, w)
	delete(e.floating, w)
}

// ViewOffset returns the current view offset of a workspace.
func (e *ScrollingEngine) ViewOffset(out *output.Output, idx int) float64 {
	if ws := e.workspace(out, idx); ws != nil {
		return ws.viewOffset
	}
	return 0
}

// FloatingPos returns the floating position of w.
func (e *ScrollingEngine) FloatingPos(w *window.Window) f64.Point {
	return e.floating[w]
}

func (e *ScrollingEngine) workspace(out *output.Output, idx int) *workspace {
	wss := e.workspaces[out]
	if idx < 0 || idx >= len(wss) {
		return nil
	}
	return wss[idx]
}

// IsFloating implements Engine.
func (e *ScrollingEngine) IsFloating(w *window.Window) bool {
	_, ok := e.floating[w]
	return ok
}

// FindPlacement implements Engine.
func (e *ScrollingEngine) FindPlacement(w *window.Window) (*output.Output, int, bool) {
	if !w.Alive() {
		return nil, 0, false
	}
	p, ok := e.placements[w]
	if !ok {
		return nil, 0, false
	}
	return p.out, p.workspace, true
}

// MoveBegin implements Engine.
func (e *ScrollingEngine) MoveBegin(w *window.Window, out *output.Output, local f64.Point) bool {
	if e.move != nil {
		e.warnf("layout: MoveBegin with a move already open")
		return false
	}
	if !w.Alive() {
		return false
	}
	if _, floating := e.floating[w]; !floating {
		if _, placed := e.placements[w]; !placed {
			return false
		}
	}
	e.move = &moveState{win: w, out: out, local: local}
	return true
}

// MoveUpdate implements Engine.
func (e *ScrollingEngine) MoveUpdate(w *window.Window, delta f64.Point, out *output.Output, local f64.Point) bool {
	if e.move == nil || e.move.win != w {
		return false
	}
	if !w.Alive() {
		e.move = nil
		return false
	}
	e.move.out = out
	e.move.local = local
	if pos, ok := e.floating[w]; ok {
		e.floating[w] = pos.Add(delta)
	}
	return true
}

// MoveEnd implements Engine.
func (e *ScrollingEngine) MoveEnd(w *window.Window) {
	if e.move == nil || e.move.win != w {
		e.warnf("layout: MoveEnd without a matching MoveBegin")
		return
	}
	// A tiled window lands on the output where the move ended.
	if _, floating := e.floating[w]; !floating && w.Alive() {
		if p, ok := e.placements[w]; ok && p.out != e.move.out {
			e.retile(w, e.move.out)
		}
	}
	e.move = nil
}

func (e *ScrollingEngine) retile(w *window.Window, out *output.Output) {
	e.RemoveWindow(w)
	if len(e.workspaces[out]) == 0 {
		e.AddWorkspace(out)
	}
	e.AddWindow(w, out, 0)
}

// ToggleFloating implements Engine.
func (e *ScrollingEngine) ToggleFloating(w *window.Window) {
	if !w.Alive() {
		return
	}
	if _, ok := e.floating[w]; ok {
		delete(e.floating, w)
		if _, placed := e.placements[w]; !placed {
			out := e.anyOutput()
			if out == nil {
				return
			}
			e.retile(w, out)
		}
		return
	}
	pos := f64.Point{}
	if e.move != nil && e.move.win == w {
		pos = e.move.out.Geometry.Min.Add(e.move.local)
	}
	e.floating[w] = pos
}

func (e *ScrollingEngine) anyOutput() *output.Output {
	for out := range e.workspaces {
		return out
	}
	return nil
}

// ViewOffsetBegin implements Engine.
func (e *ScrollingEngine) ViewOffsetBegin(out *output.Output, idx int) {
	if e.offset != nil {
		e.warnf("layout: ViewOffsetBegin with a gesture already open")
		return
	}
	ws := e.workspace(out, idx)
	if ws == nil {
		e.warnf("layout: ViewOffsetBegin on missing workspace %d", idx)
		return
	}
	ws.snapping = false
	e.offset = &offsetGesture{out: out, workspace: idx, startOffset: ws.viewOffset}
}

// ViewOffsetUpdate implements Engine.
func (e *ScrollingEngine) ViewOffsetUpdate(deltaX float64, t time.Duration) (*output.Output, bool) {
	if e.offset == nil {
		return nil, false
	}
	ws := e.workspace(e.offset.out, e.offset.workspace)
	if ws == nil {
		// The workspace went away under the gesture.
		e.offset = nil
		return nil, false
	}
	ws.viewOffset += deltaX
	e.offset.lastTime = t
	return e.offset.out, true
}

// ViewOffsetEnd implements Engine.
func (e *ScrollingEngine) ViewOffsetEnd(cancelled bool) {
	if e.offset == nil {
		e.warnf("layout: ViewOffsetEnd without a matching ViewOffsetBegin")
		return
	}
	g := e.offset
	e.offset = nil
	ws := e.workspace(g.out, g.workspace)
	if ws == nil {
		return
	}
	if cancelled {
		ws.viewOffset = g.startOffset
		return
	}
	ws.snapping = true
	ws.snapVel = 0
	ws.snapTo = math.Round(ws.viewOffset/e.ColumnWidth) * e.ColumnWidth
}

// Advance steps the snap animations by one frame. It reports whether
// any animation is still running; the host calls it once per output
// frame while it returns true.
func (e *ScrollingEngine) Advance() bool {
	active := false
	for _, wss := range e.workspaces {
		for _, ws := range wss {
			if !ws.snapping {
				continue
			}
			ws.viewOffset, ws.snapVel = e.spring.Update(ws.viewOffset, ws.snapVel, ws.snapTo)
			if math.Abs(ws.viewOffset-ws.snapTo) < 0.5 && math.Abs(ws.snapVel) < 0.5 {
				ws.viewOffset = ws.snapTo
				ws.snapping = false
				continue
			}
			active = true
		}
	}
	return active
}
