// SPDX-License-Identifier: Unlicense OR MIT

package output

import (
	"testing"

	"driftwm.dev/f64"
)

func TestOutputUnder(t *testing.T) {
	left := &Output{Name: "DP-1", Geometry: f64.Rect(0, 0, 1920, 1080)}
	right := &Output{Name: "DP-2", Geometry: f64.Rect(1920, 0, 3840, 1080)}
	var s Space
	s.Add(left)
	s.Add(right)

	for _, tc := range []struct {
		label string
		p     f64.Point
		out   *Output
		local f64.Point
	}{
		{"left output", f64.Pt(100, 200), left, f64.Pt(100, 200)},
		{"right output translated", f64.Pt(2000, 50), right, f64.Pt(80, 50)},
		{"seam belongs to the right", f64.Pt(1920, 0), right, f64.Pt(0, 0)},
	} {
		t.Run(tc.label, func(t *testing.T) {
			out, local, ok := s.OutputUnder(tc.p)
			if !ok {
				t.Fatalf("no output under %v", tc.p)
			}
			if out != tc.out {
				t.Errorf("output = %v, expected %v", out.Name, tc.out.Name)
			}
			if local != tc.local {
				t.Errorf("local point = %v, expected %v", local, tc.local)
			}
		})
	}

	if _, _, ok := s.OutputUnder(f64.Pt(-1, -1)); ok {
		t.Errorf("found an output outside all geometries")
	}
	if _, _, ok := s.OutputUnder(f64.Pt(3840, 0)); ok {
		t.Errorf("right edge is exclusive")
	}
}

func TestRemove(t *testing.T) {
	out := &Output{Name: "DP-1", Geometry: f64.Rect(0, 0, 1920, 1080)}
	var s Space
	s.Add(out)
	s.Remove(out)
	if _, _, ok := s.OutputUnder(f64.Pt(10, 10)); ok {
		t.Errorf("found a removed output")
	}
}
