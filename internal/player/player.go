// Package player owns the first-person pose: a world-space position plus a
// yaw/pitch orientation. There is no roll, and maze logic never changes the
// height, so movement stays planar while the view is free to look around.
package player

import "math"

// PitchLimit clamps looking up/down to straight vertical so the view cannot
// invert. Yaw is unbounded and wraps naturally.
const PitchLimit = math.Pi / 2

// Pose is the camera/player transform. Yaw 0 faces -Z; positive pitch looks
// up. The game update is the sole writer of a Pose.
type Pose struct {
	Position [3]float32
	Yaw      float32
	Pitch    float32
}

// Look applies a raw pointer delta for one frame, scaled by sensitivity.
// Deltas are applied as-is; only the resulting pitch is clamped.
func (p *Pose) Look(dx, dy, sensitivity float32) {
	p.Yaw -= dx * sensitivity
	p.Pitch -= dy * sensitivity
	if p.Pitch > PitchLimit {
		p.Pitch = PitchLimit
	}
	if p.Pitch < -PitchLimit {
		p.Pitch = -PitchLimit
	}
}

// PlanarAxes returns the forward and right unit vectors on the XZ plane for
// the current yaw, as (x,z) pairs. Movement uses these so that looking at
// the floor does not slow walking down.
func (p *Pose) PlanarAxes() (forward, right [2]float32) {
	s := float32(math.Sin(float64(p.Yaw)))
	c := float32(math.Cos(float64(p.Yaw)))
	forward = [2]float32{-s, -c}
	right = [2]float32{c, -s}
	return forward, right
}

// LookDir returns the full 3D view direction from yaw and pitch, for
// pointing the camera target.
func (p *Pose) LookDir() [3]float32 {
	sy := float32(math.Sin(float64(p.Yaw)))
	cy := float32(math.Cos(float64(p.Yaw)))
	sp := float32(math.Sin(float64(p.Pitch)))
	cp := float32(math.Cos(float64(p.Pitch)))
	return [3]float32{-cp * sy, sp, -cp * cy}
}
