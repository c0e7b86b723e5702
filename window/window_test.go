// SPDX-License-Identifier: Unlicense OR MIT

package window

import (
	"testing"

	"driftwm.dev/f64"
)

func TestLiveness(t *testing.T) {
	w := New(1, "term", f64.Pt(640, 480))
	if !w.Alive() {
		t.Fatalf("new window not alive")
	}

	// A second holder of the same reference observes the close.
	ref := w
	w.Close()
	if ref.Alive() {
		t.Errorf("reference alive after close")
	}

	var nilWin *Window
	if nilWin.Alive() {
		t.Errorf("nil window reported alive")
	}
}
