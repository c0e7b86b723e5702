// SPDX-License-Identifier: Unlicense OR MIT

// Package cursor is the cursor feedback surface: grabs request an
// icon while active and reset it when they end. Rendering the icon
// is the theme/renderer's job.
package cursor

import "driftwm.dev/io/pointer"

// Setter accepts cursor icon requests.
type Setter interface {
	// Set requests the given icon.
	Set(c pointer.Cursor)
	// Reset returns the cursor to the platform default.
	Reset()
}

// Manager is a Setter that remembers the current request so the
// renderer can pick it up on the next frame.
type Manager struct {
	current pointer.Cursor
}

// Set implements Setter.
func (m *Manager) Set(c pointer.Cursor) {
	m.current = c
}

// Reset implements Setter.
func (m *Manager) Reset() {
	m.current = pointer.CursorDefault
}

// Current returns the most recently requested icon.
func (m *Manager) Current() pointer.Cursor {
	return m.current
}
