// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the compositor configuration file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"driftwm.dev/input"
)

// Config is the on-disk configuration.
type Config struct {
	Input input.Options `toml:"input"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: input.Options{
			DragThreshold:  input.DefaultDragThreshold,
			FloatingToggle: input.ToggleMoveOnly,
		},
	}
}

// Load decodes the TOML file at path over the defaults. Keys absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Input.DragThreshold < 0 {
		return Config{}, fmt.Errorf("config: drag-threshold must not be negative")
	}
	return cfg, nil
}

// Parse decodes TOML from a string, for tests and embedded defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Input.DragThreshold < 0 {
		return Config{}, fmt.Errorf("config: drag-threshold must not be negative")
	}
	return cfg, nil
}
