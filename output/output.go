// SPDX-License-Identifier: Unlicense OR MIT

// Package output models compositor outputs and their arrangement in
// the global pointer plane.
package output

import "driftwm.dev/f64"

// An Output is one monitor with its rectangle in the global plane.
type Output struct {
	// Name is the connector name, e.g. "eDP-1".
	Name string
	// Geometry is the output's rectangle in the global pointer
	// plane, in logical coordinates.
	Geometry f64.Rectangle
}

// Locator resolves a pointer-plane point to the output under it.
type Locator interface {
	// OutputUnder returns the output containing p and p translated
	// into that output's local coordinate space. It reports false
	// when no output is under p.
	OutputUnder(p f64.Point) (*Output, f64.Point, bool)
}

// Space is a Locator over a fixed arrangement of outputs. Overlaps
// resolve to the earliest added output.
type Space struct {
	outputs []*Output
}

// Add appends an output to the space.
func (s *Space) Add(out *Output) {
	s.outputs = append(s.outputs, out)
}

// Remove deletes an output from the space.
func (s *Space) Remove(out *Output) {
	for i, o := range s.outputs {
		if o == out {
			s.outputs = append(s.outputs[:i], s.outputs[i+1:]...)
			return
		}
	}
}

// Outputs returns the outputs in the space, in addition order.
func (s *Space) Outputs() []*Output {
	return s.outputs
}

// OutputUnder implements Locator.
func (s *Space) OutputUnder(p f64.Point) (*Output, f64.Point, bool) {
	for _, o := range s.outputs {
		if o.Geometry.Contains(p) {
			return o, p.Sub(o.Geometry.Min), true
		}
	}
	return nil, f64.Point{}, false
}
