// Package input samples raylib devices once per frame into the plain input
// state consumed by the game update. Key and mouse events never touch game
// state directly; the frame update is the sole writer.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mazerun/internal/game"
)

// Sampler owns the mouse-capture flag. A click while the session is started
// captures the mouse for looking around; ESC releases it.
type Sampler struct {
	captured bool
}

// NewSampler returns a sampler with the mouse not captured.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Captured reports whether the mouse is currently captured.
func (s *Sampler) Captured() bool {
	return s.captured
}

// Capture grabs the mouse, hiding the cursor. Used on session start so the
// starting click also begins looking around.
func (s *Sampler) Capture() {
	if s.captured {
		return
	}
	s.captured = true
	rl.DisableCursor()
}

// Release lets go of the mouse and shows the cursor again.
func (s *Sampler) Release() {
	if !s.captured {
		return
	}
	s.captured = false
	rl.EnableCursor()
}

// StartRequested reports the start action for this frame (click or enter on
// the start screen).
func (s *Sampler) StartRequested() bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft) || rl.IsKeyPressed(rl.KeyEnter)
}

// RestartRequested reports the restart action for this frame.
func (s *Sampler) RestartRequested() bool {
	return rl.IsKeyPressed(rl.KeyR)
}

// Sample reads the held movement keys and the pointer delta for this frame.
// started gates capture toggling: clicking only captures once the session
// is underway (the start click is handled via Capture). The look delta is
// reported only while captured.
func (s *Sampler) Sample(started bool) game.Input {
	if started && !s.captured && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		s.Capture()
	}
	if s.captured && rl.IsKeyPressed(rl.KeyEscape) {
		s.Release()
	}

	in := game.Input{Captured: s.captured}
	in.Held.Forward = rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp)
	in.Held.Backward = rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown)
	in.Held.Left = rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft)
	in.Held.Right = rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight)
	if s.captured {
		d := rl.GetMouseDelta()
		in.LookDX = d.X
		in.LookDY = d.Y
	}
	return in
}
