// Package debug draws the optional FPS / position overlay.
package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mazerun/internal/maze"
	"mazerun/internal/player"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the overlay text every N frames to
	// reduce allocations.
	updateInterval = 30
)

// Debug shows FPS and the player's current grid cell at the top-right.
// Hidden by default.
type Debug struct {
	Show       bool
	cellSize   float32
	frameCount uint32
	fpsText    string
	cellText   string
}

// New returns a hidden debug overlay for the given cell size.
func New(cellSize float32) *Debug {
	return &Debug{cellSize: cellSize}
}

// SetShow sets whether the overlay is drawn.
func (d *Debug) SetShow(show bool) {
	d.Show = show
}

// Draw renders the overlay when enabled. Call last in the draw loop. Text
// is recomputed every updateInterval frames.
func (d *Debug) Draw(pose player.Pose) {
	if !d.Show {
		return
	}
	d.frameCount++
	if d.frameCount%updateInterval == 0 || d.fpsText == "" {
		cell := maze.SnapPos(pose.Position[0], pose.Position[2], d.cellSize)
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		d.cellText = fmt.Sprintf("cell (%d,%d)", cell.X, cell.Z)
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range []string{d.fpsText, d.cellText} {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
