// Package physics implements the collision-aware movement model: a
// frictionally damped planar velocity driven by held keys, integrated per
// frame and resolved one axis at a time against the maze grid.
package physics

import (
	"math"

	"mazerun/internal/maze"
	"mazerun/internal/player"
)

// Held is the per-frame held state of the four movement keys.
type Held struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Mover integrates a 2D (x,z) velocity that persists across frames. The
// velocity decays exponentially toward zero and is accelerated toward the
// held direction, so releasing a key gives smooth deceleration instead of
// an instant stop.
type Mover struct {
	velX, velZ float32
	accel      float32
	damping    float32
	cellSize   float32
}

// NewMover returns a mover with zero velocity. accel is the per-second
// acceleration, damping the per-second decay rate, cellSize the world edge
// length of one grid cell.
func NewMover(accel, damping, cellSize float32) *Mover {
	return &Mover{accel: accel, damping: damping, cellSize: cellSize}
}

// Velocity returns the current (x,z) velocity.
func (m *Mover) Velocity() (x, z float32) {
	return m.velX, m.velZ
}

// Step advances the pose by one frame of duration dt. The held directions
// are normalized (diagonal movement is not faster) and rotated into world
// space by the pose yaw. Each axis is then committed independently: a
// tentative position whose snapped cell is out of bounds or a wall is
// discarded while the other axis still applies, so diagonal movement into a
// wall slides along it. A rejected axis discards only the positional
// update; the velocity is kept, so movement resumes without a new key event
// once the axis is clear.
//
// Snapping is nearest-cell, so the guarantee is discrete: a position never
// snaps into a wall cell, but a single step larger than half a cell could
// tunnel through a one-cell wall. The shipped constants keep the terminal
// speed (accel/damping) well under that bound at the target frame rate.
func (m *Mover) Step(pose *player.Pose, grid *maze.Grid, held Held, dt float32) {
	decay := 1 - m.damping*dt
	if decay < 0 {
		decay = 0
	}
	m.velX *= decay
	m.velZ *= decay

	f := axis(held.Forward, held.Backward)
	r := axis(held.Right, held.Left)
	if f != 0 || r != 0 {
		inv := 1 / float32(math.Hypot(float64(f), float64(r)))
		f *= inv
		r *= inv
		forward, right := pose.PlanarAxes()
		m.velX += (f*forward[0] + r*right[0]) * m.accel * dt
		m.velZ += (f*forward[1] + r*right[1]) * m.accel * dt
	}

	// X first, then Z against the possibly-updated X.
	nx := pose.Position[0] + m.velX*dt
	if grid.Walkable(maze.Snap(nx, m.cellSize), maze.Snap(pose.Position[2], m.cellSize)) {
		pose.Position[0] = nx
	}
	nz := pose.Position[2] + m.velZ*dt
	if grid.Walkable(maze.Snap(pose.Position[0], m.cellSize), maze.Snap(nz, m.cellSize)) {
		pose.Position[2] = nz
	}
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
