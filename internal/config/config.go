// Package config holds gameplay tuning loaded from config/game.yaml.
// All values have defaults; the file may be missing or partial.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Path is the default config file location, relative to the process working
// directory.
const Path = "config/game.yaml"

// Config is the full set of tuning constants. Gameplay reads these once at
// startup; nothing is hot-reloaded.
type Config struct {
	// CellSize is the world edge length of one maze cell.
	CellSize float32 `yaml:"cell_size"`
	// WallHeight is the height of wall blocks.
	WallHeight float32 `yaml:"wall_height"`
	// EyeHeight is the camera height above the floor.
	EyeHeight float32 `yaml:"eye_height"`
	// MoveAccel is the movement acceleration in world units per second^2.
	MoveAccel float32 `yaml:"move_accel"`
	// Damping is the per-second exponential velocity decay rate. Terminal
	// speed is MoveAccel/Damping.
	Damping float32 `yaml:"damping"`
	// MouseSensitivity scales raw pointer deltas to radians.
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	// FOV is the vertical camera field of view in degrees.
	FOV float32 `yaml:"fov"`
	// Windowed runs in a window instead of fullscreen.
	Windowed bool `yaml:"windowed"`
	// ShowDebug enables the FPS / current-cell overlay.
	ShowDebug bool `yaml:"show_debug"`
}

// Default returns the shipped tuning.
func Default() Config {
	return Config{
		CellSize:         2,
		WallHeight:       2.4,
		EyeHeight:        1.6,
		MoveAccel:        40,
		Damping:          10,
		MouseSensitivity: 0.002,
		FOV:              70,
		Windowed:         false,
		ShowDebug:        false,
	}
}

// Load reads tuning from the given YAML file. A missing or unparsable file
// falls back to Default; keys absent from the file keep their defaults.
func Load(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects tuning the movement model cannot work with.
func (c Config) Validate() error {
	check := func(name string, v float32) error {
		if v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", name, v)
		}
		return nil
	}
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"cell_size", c.CellSize},
		{"wall_height", c.WallHeight},
		{"eye_height", c.EyeHeight},
		{"move_accel", c.MoveAccel},
		{"damping", c.Damping},
		{"mouse_sensitivity", c.MouseSensitivity},
		{"fov", c.FOV},
	} {
		if err := check(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

// TerminalSpeed is the steady-state movement speed where acceleration and
// damping balance.
func (c Config) TerminalSpeed() float32 {
	return c.MoveAccel / c.Damping
}

// TunnelSafe reports whether one frame of duration dt at terminal speed
// stays under half a cell. Collision snaps to the nearest cell, so a larger
// step could pass through a one-cell wall; that limitation is accepted, but
// the caller can warn when tuning crosses the line.
func (c Config) TunnelSafe(dt float32) bool {
	return c.TerminalSpeed()*dt < c.CellSize/2
}
