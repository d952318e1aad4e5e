package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"negative wall height", func(c *Config) { c.WallHeight = -1 }},
		{"zero eye height", func(c *Config) { c.EyeHeight = 0 }},
		{"zero accel", func(c *Config) { c.MoveAccel = 0 }},
		{"negative damping", func(c *Config) { c.Damping = -3 }},
		{"zero sensitivity", func(c *Config) { c.MouseSensitivity = 0 }},
		{"zero fov", func(c *Config) { c.FOV = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cell_size: 4\nwindowed: true\n"), 0644))

	cfg := Load(path)
	assert.Equal(t, float32(4), cfg.CellSize)
	assert.True(t, cfg.Windowed)
	assert.Equal(t, Default().MoveAccel, cfg.MoveAccel)
	assert.Equal(t, Default().Damping, cfg.Damping)
}

func TestLoadUnparsableFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))
	assert.Equal(t, Default(), Load(path))
}

func TestTunnelSafe(t *testing.T) {
	// The shipped tuning keeps one 60 FPS frame at terminal speed well
	// under half a cell.
	assert.True(t, Default().TunnelSafe(1.0/60))

	fast := Default()
	fast.MoveAccel = 1000
	fast.Damping = 1
	assert.False(t, fast.TunnelSafe(1.0/60))
}
