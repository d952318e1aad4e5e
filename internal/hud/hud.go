// Package hud draws the 2D overlay: the elapsed timer, the checkpoint
// counter, and the start / completion screens.
package hud

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mazerun/internal/session"
)

const (
	fontSize      = 20
	titleFontSize = 40
	padding       = 12
	lineHeight    = fontSize + 4
)

// Reused every frame to avoid per-frame color allocations.
var (
	textColor      = rl.NewColor(235, 235, 235, 255)
	dimTextColor   = rl.NewColor(170, 170, 170, 255)
	overlayBgColor = rl.NewColor(0, 0, 0, 170)
	finishedColor  = rl.NewColor(80, 200, 120, 255)
)

// HUD draws from a session snapshot only; it holds no game state.
type HUD struct{}

// New returns a HUD.
func New() *HUD {
	return &HUD{}
}

// Draw renders the overlay for the current session state. Call after the 3D
// scene, inside the drawing phase.
func (h *HUD) Draw(snap session.Snapshot) {
	if !snap.Started {
		h.drawCenterPanel("MAZE RUN", "click to start", textColor)
		return
	}

	rl.DrawText(FormatElapsed(snap.Elapsed), padding, padding, fontSize, textColor)
	counter := fmt.Sprintf("checkpoints %d / %d", snap.Reached, snap.Total)
	rl.DrawText(counter, padding, padding+lineHeight, fontSize, textColor)

	if snap.Complete {
		final := fmt.Sprintf("finished in %s  -  press R to restart", FormatElapsed(snap.Elapsed))
		h.drawCenterPanel("FINISHED", final, finishedColor)
	}
}

// drawCenterPanel dims the screen and draws a title with a hint line under
// it, both centered.
func (h *HUD) drawCenterPanel(title, hint string, titleColor rl.Color) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, screenW, screenH, overlayBgColor)

	tw := rl.MeasureText(title, titleFontSize)
	rl.DrawText(title, (screenW-tw)/2, screenH/2-titleFontSize, titleFontSize, titleColor)
	hw := rl.MeasureText(hint, fontSize)
	rl.DrawText(hint, (screenW-hw)/2, screenH/2+padding, fontSize, dimTextColor)
}

// FormatElapsed renders a duration as MM:SS.t, the timer format shown while
// running and on the finish screen.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := int(d/time.Second) % 60
	tenths := int(d/(100*time.Millisecond)) % 10
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths)
}
