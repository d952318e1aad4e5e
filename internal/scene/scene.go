// Package scene renders the maze in 3D: static wall and floor geometry
// built once from the grid, live checkpoint/finish markers, and the
// first-person camera synced from the player pose every frame.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"mazerun/internal/config"
	"mazerun/internal/maze"
	"mazerun/internal/player"
)

const (
	markerRadius = 0.3
	markerHeight = 1.0
	finishRadius = 0.35
	// Marker pulse: scale swings between these over pulsePeriod seconds,
	// then back.
	pulseMin    = 0.8
	pulseMax    = 1.25
	pulsePeriod = 0.6
)

// Reused every frame to avoid per-frame color allocations.
var (
	floorColor      = rl.NewColor(52, 56, 64, 255)
	wallColor       = rl.NewColor(96, 106, 122, 255)
	wallEdgeColor   = rl.NewColor(34, 38, 46, 255)
	checkpointColor = rl.NewColor(235, 186, 30, 255)
	reachedColor    = rl.NewColor(80, 200, 120, 255)
	finishColor     = rl.NewColor(220, 60, 60, 255)
)

type marker struct {
	cell maze.Pos
	pos  rl.Vector3
}

// Scene holds the camera and the geometry derived from one grid. The grid
// is immutable, so wall and marker placement is computed once in New; only
// the camera and the pulse animation change per frame.
type Scene struct {
	camera rl.Camera3D

	wallSize    rl.Vector3
	walls       []rl.Vector3
	checkpoints []marker
	finish      rl.Vector3
	floorCenter rl.Vector3
	floorSize   rl.Vector2

	pulse      *gween.Tween
	pulseGrow  bool
	pulseScale float32
}

// New builds the static geometry for the grid and a perspective camera.
func New(grid *maze.Grid, cfg config.Config) *Scene {
	w, h := grid.Size()
	s := &Scene{
		wallSize:    rl.NewVector3(cfg.CellSize, cfg.WallHeight, cfg.CellSize),
		floorCenter: rl.NewVector3(float32(w-1)/2*cfg.CellSize, 0, float32(h-1)/2*cfg.CellSize),
		floorSize:   rl.NewVector2(float32(w)*cfg.CellSize, float32(h)*cfg.CellSize),
		pulse:       gween.New(pulseMin, pulseMax, pulsePeriod, ease.InOutQuad),
		pulseGrow:   true,
		pulseScale:  pulseMin,
	}

	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			k, _ := grid.KindAt(x, z)
			cx, cz := maze.CellCenter(maze.Pos{X: x, Z: z}, cfg.CellSize)
			switch k {
			case maze.Wall:
				s.walls = append(s.walls, rl.NewVector3(cx, cfg.WallHeight/2, cz))
			case maze.Checkpoint:
				s.checkpoints = append(s.checkpoints, marker{
					cell: maze.Pos{X: x, Z: z},
					pos:  rl.NewVector3(cx, markerHeight, cz),
				})
			case maze.Finish:
				s.finish = rl.NewVector3(cx, 0, cz)
			}
		}
	}

	s.camera.Up = rl.NewVector3(0, 1, 0)
	s.camera.Fovy = cfg.FOV
	s.camera.Projection = rl.CameraPerspective
	return s
}

// Update syncs the camera to the pose and advances the marker pulse.
func (s *Scene) Update(dt float32, pose player.Pose) {
	s.camera.Position = rl.NewVector3(pose.Position[0], pose.Position[1], pose.Position[2])
	dir := pose.LookDir()
	s.camera.Target = rl.NewVector3(
		pose.Position[0]+dir[0],
		pose.Position[1]+dir[1],
		pose.Position[2]+dir[2],
	)

	v, done := s.pulse.Update(dt)
	s.pulseScale = v
	if done {
		if s.pulseGrow {
			s.pulse = gween.New(pulseMax, pulseMin, pulsePeriod, ease.InOutQuad)
		} else {
			s.pulse = gween.New(pulseMin, pulseMax, pulsePeriod, ease.InOutQuad)
		}
		s.pulseGrow = !s.pulseGrow
	}
}

// Draw renders the 3D scene. reached reports whether a checkpoint cell has
// been visited, switching its marker color; reached markers stop pulsing.
func (s *Scene) Draw(reached func(maze.Pos) bool) {
	rl.BeginMode3D(s.camera)

	rl.DrawPlane(s.floorCenter, s.floorSize, floorColor)
	for _, pos := range s.walls {
		rl.DrawCubeV(pos, s.wallSize, wallColor)
		rl.DrawCubeWiresV(pos, s.wallSize, wallEdgeColor)
	}
	for _, m := range s.checkpoints {
		if reached(m.cell) {
			rl.DrawSphere(m.pos, markerRadius, reachedColor)
			continue
		}
		rl.DrawSphere(m.pos, markerRadius*s.pulseScale, checkpointColor)
	}
	rl.DrawCylinder(s.finish, finishRadius, finishRadius, s.wallSize.Y*0.8, 16, finishColor)

	rl.EndMode3D()
}
