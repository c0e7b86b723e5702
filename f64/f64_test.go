// SPDX-License-Identifier: Unlicense OR MIT

package f64

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4).Add(Pt(1, -2))
	if got, want := p, Pt(4, 2); got != want {
		t.Errorf("Add = %v, expected %v", got, want)
	}
	if got, want := Pt(3, 4).Sub(Pt(1, 1)), Pt(2, 3); got != want {
		t.Errorf("Sub = %v, expected %v", got, want)
	}
	if got, want := Pt(3, 4).Mul(2), Pt(6, 8); got != want {
		t.Errorf("Mul = %v, expected %v", got, want)
	}
}

func TestRectangleContains(t *testing.T) {
	r := Rect(0, 0, 10, 10)
	for _, tc := range []struct {
		p  Point
		in bool
	}{
		{Pt(0, 0), true},
		{Pt(9.999, 9.999), true},
		{Pt(10, 10), false},
		{Pt(-0.001, 5), false},
	} {
		if got := r.Contains(tc.p); got != tc.in {
			t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.in)
		}
	}
}

func TestRectangleOps(t *testing.T) {
	r := Rect(0, 0, 4, 4)
	s := Rect(2, 2, 6, 6)
	if got, want := r.Intersect(s), Rect(2, 2, 4, 4); got != want {
		t.Errorf("Intersect = %v, expected %v", got, want)
	}
	if got, want := r.Union(s), Rect(0, 0, 6, 6); got != want {
		t.Errorf("Union = %v, expected %v", got, want)
	}
	if !Rect(3, 3, 3, 3).Empty() {
		t.Errorf("degenerate rectangle not empty")
	}
	if got, want := r.Add(Pt(1, 2)), Rect(1, 2, 5, 6); got != want {
		t.Errorf("Add = %v, expected %v", got, want)
	}
}
