// Package game wires the per-frame update: orientation, movement, then
// progress tracking, gated by the session state machine. The update is the
// sole writer of the pose, the velocity, and the session; input listeners
// only fill the Input value consumed here once per tick.
package game

import (
	"io"

	"github.com/sirupsen/logrus"

	"mazerun/internal/config"
	"mazerun/internal/maze"
	"mazerun/internal/physics"
	"mazerun/internal/player"
	"mazerun/internal/session"
)

// Input is one frame of buffered input state. The host samples devices into
// it before calling Update; nothing here mutates game state directly.
type Input struct {
	Held     physics.Held
	LookDX   float32
	LookDY   float32
	Captured bool
}

// Game owns the player pose, the mover, and the current session for one
// maze. The grid is immutable and shared.
type Game struct {
	cfg  config.Config
	grid *maze.Grid
	log  *logrus.Logger

	pose    player.Pose
	mover   *physics.Mover
	session *session.Session
}

// New returns a game with the player at the grid's start cell and a fresh,
// not-started session. A nil log discards logging.
func New(grid *maze.Grid, cfg config.Config, log *logrus.Logger) *Game {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	g := &Game{cfg: cfg, grid: grid, log: log}
	g.spawn()
	return g
}

// spawn places the pose at the start cell center at eye height, facing -Z,
// and creates a fresh mover and session.
func (g *Game) spawn() {
	sx, sz := maze.CellCenter(g.grid.Start(), g.cfg.CellSize)
	g.pose = player.Pose{Position: [3]float32{sx, g.cfg.EyeHeight, sz}}
	g.mover = physics.NewMover(g.cfg.MoveAccel, g.cfg.Damping, g.cfg.CellSize)
	g.session = session.New(len(g.grid.Checkpoints()), g.log)
}

// Start begins the session. No-op if already started.
func (g *Game) Start() {
	g.session.Start()
}

// Reset discards the session entirely and respawns the player. Used for the
// restart action; there is no partial reset.
func (g *Game) Reset() {
	g.session.Close()
	g.spawn()
}

// Close releases the session's clock. Call once at teardown.
func (g *Game) Close() {
	g.session.Close()
}

// Update runs one frame. Orientation applies while the mouse is captured
// and the session has started; movement and progress run only while the
// session is running, so completing the maze freezes gameplay but not the
// view.
func (g *Game) Update(dt float32, in Input) {
	if in.Captured && g.session.Started() {
		g.pose.Look(in.LookDX, in.LookDY, g.cfg.MouseSensitivity)
	}
	if !g.session.Running() {
		return
	}
	g.mover.Step(&g.pose, g.grid, in.Held, dt)
	g.trackProgress()
}

// trackProgress snaps the position to its cell and applies checkpoint and
// finish effects. Out-of-bounds positions have no effect.
func (g *Game) trackProgress() {
	p := maze.SnapPos(g.pose.Position[0], g.pose.Position[2], g.cfg.CellSize)
	k, ok := g.grid.KindAt(p.X, p.Z)
	if !ok {
		return
	}
	switch k {
	case maze.Checkpoint:
		g.session.Visit(p)
	case maze.Finish:
		g.session.Finish()
	}
}

// Pose returns a copy of the current player pose.
func (g *Game) Pose() player.Pose {
	return g.pose
}

// Cell returns the grid cell the player currently snaps to.
func (g *Game) Cell() maze.Pos {
	return maze.SnapPos(g.pose.Position[0], g.pose.Position[2], g.cfg.CellSize)
}

// Snapshot returns the session view for the HUD.
func (g *Game) Snapshot() session.Snapshot {
	return g.session.Snapshot()
}

// Reached reports whether a checkpoint cell has been visited, for the
// marker visuals.
func (g *Game) Reached(p maze.Pos) bool {
	return g.session.Reached(p)
}

// Grid returns the immutable maze.
func (g *Game) Grid() *maze.Grid {
	return g.grid
}
