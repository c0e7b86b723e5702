// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"
	"time"

	"driftwm.dev/f64"
	"driftwm.dev/output"
	"driftwm.dev/window"
)

func testEngine() (*ScrollingEngine, *output.Output, *window.Window) {
	e := NewScrollingEngine()
	out := &output.Output{Name: "DP-1", Geometry: f64.Rect(0, 0, 1920, 1080)}
	ws := e.AddWorkspace(out)
	win := window.New(1, "term", f64.Pt(640, 480))
	e.AddWindow(win, out, ws)
	return e, out, win
}

func TestFindPlacement(t *testing.T) {
	e, out, win := testEngine()

	gotOut, ws, ok := e.FindPlacement(win)
	if !ok {
		t.Fatalf("FindPlacement failed for a placed window")
	}
	if gotOut != out || ws != 0 {
		t.Errorf("placement = (%v, %d), expected (%v, 0)", gotOut, ws, out)
	}

	win.Close()
	if _, _, ok := e.FindPlacement(win); ok {
		t.Errorf("FindPlacement succeeded for a dead window")
	}
}

func TestMoveTransactionProtocol(t *testing.T) {
	e, out, win := testEngine()

	if !e.MoveBegin(win, out, f64.Pt(10, 10)) {
		t.Fatalf("MoveBegin refused a placed window")
	}
	// A second begin while one is open must refuse.
	other := window.New(2, "editor", f64.Pt(640, 480))
	e.AddWindow(other, out, 0)
	if e.MoveBegin(other, out, f64.Pt(0, 0)) {
		t.Errorf("MoveBegin succeeded with a move already open")
	}

	if !e.MoveUpdate(win, f64.Pt(5, 5), out, f64.Pt(15, 15)) {
		t.Errorf("MoveUpdate reported not ongoing")
	}
	e.MoveEnd(win)

	// Closed again: updates refuse.
	if e.MoveUpdate(win, f64.Pt(1, 1), out, f64.Pt(16, 16)) {
		t.Errorf("MoveUpdate succeeded with no open move")
	}
}

func TestMoveStopsWhenWindowDies(t *testing.T) {
	e, out, win := testEngine()

	if !e.MoveBegin(win, out, f64.Pt(10, 10)) {
		t.Fatalf("MoveBegin refused")
	}
	win.Close()
	if e.MoveUpdate(win, f64.Pt(5, 5), out, f64.Pt(15, 15)) {
		t.Errorf("MoveUpdate kept going after window death")
	}
}

func TestMoveBeginRefusesUnplacedWindow(t *testing.T) {
	e, out, _ := testEngine()
	stray := window.New(9, "stray", f64.Pt(100, 100))
	if e.MoveBegin(stray, out, f64.Pt(0, 0)) {
		t.Errorf("MoveBegin succeeded for an unplaced, non-floating window")
	}
}

func TestFloatingMoveAppliesDeltas(t *testing.T) {
	e, out, win := testEngine()
	e.ToggleFloating(win)
	if !e.IsFloating(win) {
		t.Fatalf("window not floating after toggle")
	}

	start := e.FloatingPos(win)
	if !e.MoveBegin(win, out, f64.Pt(10, 10)) {
		t.Fatalf("MoveBegin refused a floating window")
	}
	e.MoveUpdate(win, f64.Pt(30, -20), out, f64.Pt(40, 0))
	e.MoveUpdate(win, f64.Pt(5, 5), out, f64.Pt(45, 5))
	e.MoveEnd(win)

	if got, want := e.FloatingPos(win), start.Add(f64.Pt(35, -15)); got != want {
		t.Errorf("floating position = %v, expected %v", got, want)
	}
}

func TestToggleFloatingDuringMove(t *testing.T) {
	e, out, win := testEngine()

	if !e.MoveBegin(win, out, f64.Pt(10, 10)) {
		t.Fatalf("MoveBegin refused")
	}
	e.ToggleFloating(win)
	// The open move survives the toggle.
	if !e.MoveUpdate(win, f64.Pt(5, 5), out, f64.Pt(15, 15)) {
		t.Errorf("MoveUpdate reported not ongoing after toggle")
	}
	e.MoveEnd(win)
}

func TestViewOffsetGesture(t *testing.T) {
	e, out, _ := testEngine()

	e.ViewOffsetBegin(out, 0)
	affected, ongoing := e.ViewOffsetUpdate(100, 10*time.Millisecond)
	if !ongoing {
		t.Fatalf("gesture not ongoing after begin")
	}
	if affected != out {
		t.Errorf("affected output = %v, expected %v", affected, out)
	}
	e.ViewOffsetUpdate(-30, 20*time.Millisecond)
	e.ViewOffsetEnd(true)

	// A cancelled end restores the offset from before the gesture.
	if got, want := e.ViewOffset(out, 0), 0.0; got != want {
		t.Errorf("view offset after cancel = %v, expected %v", got, want)
	}

	// Updates after end refuse.
	if _, ongoing := e.ViewOffsetUpdate(10, 30*time.Millisecond); ongoing {
		t.Errorf("ViewOffsetUpdate succeeded with no open gesture")
	}
}

func TestViewOffsetSnapsToColumnStride(t *testing.T) {
	e, out, _ := testEngine()

	e.ViewOffsetBegin(out, 0)
	e.ViewOffsetUpdate(700, 10*time.Millisecond)
	e.ViewOffsetEnd(false)

	// Drive the spring until it settles; it must land on the
	// nearest column stride.
	for i := 0; i < 600; i++ {
		if !e.Advance() {
			break
		}
	}
	if e.Advance() {
		t.Fatalf("snap animation did not settle")
	}
	if got, want := e.ViewOffset(out, 0), DefaultColumnWidth; got != want {
		t.Errorf("view offset after snap = %v, expected %v", got, want)
	}
}

func TestRemoveWindow(t *testing.T) {
	e, _, win := testEngine()
	e.RemoveWindow(win)
	if _, _, ok := e.FindPlacement(win); ok {
		t.Errorf("FindPlacement succeeded after removal")
	}
}
