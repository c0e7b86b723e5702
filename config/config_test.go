// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"driftwm.dev/input"
)

func TestDefaults(t *testing.T) {
	cfg, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := cfg.Input.DragThreshold, input.DefaultDragThreshold; got != want {
		t.Errorf("drag-threshold = %v, expected %v", got, want)
	}
	if got, want := cfg.Input.FloatingToggle, input.ToggleMoveOnly; got != want {
		t.Errorf("floating-toggle = %v, expected %v", got, want)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(`
[input]
drag-threshold = 12.5
floating-toggle = "always"
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := cfg.Input.DragThreshold, 12.5; got != want {
		t.Errorf("drag-threshold = %v, expected %v", got, want)
	}
	if got, want := cfg.Input.FloatingToggle, input.ToggleAlways; got != want {
		t.Errorf("floating-toggle = %v, expected %v", got, want)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse(`
[input]
drag-threshold = 4.0
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := cfg.Input.FloatingToggle, input.ToggleMoveOnly; got != want {
		t.Errorf("floating-toggle = %v, expected %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		label string
		data  string
	}{
		{"unknown policy", "[input]\nfloating-toggle = \"sometimes\"\n"},
		{"negative threshold", "[input]\ndrag-threshold = -1.0\n"},
		{"malformed toml", "[input\n"},
	} {
		t.Run(tc.label, func(t *testing.T) {
			if _, err := Parse(tc.data); err == nil {
				t.Errorf("Parse accepted %q", tc.data)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drift.toml")
	if err := os.WriteFile(path, []byte("[input]\ndrag-threshold = 16.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Input.DragThreshold, 16.0; got != want {
		t.Errorf("drag-threshold = %v, expected %v", got, want)
	}
}
