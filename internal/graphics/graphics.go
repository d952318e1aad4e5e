package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	targetFPS      = 60
	windowedWidth  = 1280
	windowedHeight = 720
)

// Run opens the window and drives the main loop. Each frame it calls update
// with the frame duration (input sampling + simulation), then clears the
// screen and calls draw (3D scene, then 2D overlay).
// ESC is reserved for releasing the mouse, not for quitting; close via the
// window button.
func Run(title string, windowed bool, update func(dt float32), draw func()) {
	w, h := int32(windowedWidth), int32(windowedHeight)
	if !windowed {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		w = int32(rl.GetMonitorWidth(0))
		h = int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(w, h, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
