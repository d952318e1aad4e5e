package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerun/internal/config"
	"mazerun/internal/maze"
	"mazerun/internal/physics"
)

const dt = 1.0 / 60

func newTestGame(t *testing.T) *Game {
	t.Helper()
	grid, err := maze.Level1()
	require.NoError(t, err)
	g := New(grid, config.Default(), nil)
	t.Cleanup(g.Close)
	return g
}

// drive holds keys toward the target cell each frame until the player snaps
// to it. Yaw stays 0, so the world axes match the key axes directly.
func drive(t *testing.T, g *Game, target maze.Pos, maxFrames int) {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		cell := g.Cell()
		if cell == target {
			return
		}
		var held physics.Held
		held.Right = target.X > cell.X
		held.Left = target.X < cell.X
		held.Backward = target.Z > cell.Z
		held.Forward = target.Z < cell.Z
		g.Update(dt, Input{Held: held})
	}
	t.Fatalf("did not reach %v within %d frames (at %v)", target, maxFrames, g.Cell())
}

func TestUpdateBeforeStartIsNoop(t *testing.T) {
	g := newTestGame(t)

	before := g.Pose()
	in := Input{
		Held:     physics.Held{Forward: true, Right: true},
		LookDX:   100,
		LookDY:   100,
		Captured: true,
	}
	for i := 0; i < 30; i++ {
		g.Update(dt, in)
	}
	assert.Equal(t, before, g.Pose())
	assert.False(t, g.Snapshot().Started)
}

func TestSpawn(t *testing.T) {
	g := newTestGame(t)

	cfg := config.Default()
	assert.Equal(t, maze.Pos{X: 1, Z: 1}, g.Cell())
	pose := g.Pose()
	assert.Equal(t, cfg.EyeHeight, pose.Position[1])
	assert.Zero(t, pose.Yaw)
}

// Full traverse of the shipped level: along the top corridor, down the
// right-hand column past the checkpoint at (13,5), onto the finish.
func TestTraverseToFinish(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	require.True(t, g.Snapshot().Started)

	drive(t, g, maze.Pos{X: 13, Z: 1}, 2000)
	assert.Zero(t, g.Snapshot().Reached, "no checkpoint on the top corridor")

	drive(t, g, maze.Pos{X: 13, Z: 13}, 3000)

	snap := g.Snapshot()
	assert.True(t, snap.Complete)
	assert.Equal(t, 1, snap.Reached, "exactly the one checkpoint on the route")
	assert.Equal(t, 3, snap.Total)
	assert.True(t, g.Reached(maze.Pos{X: 13, Z: 5}))
	assert.False(t, g.Reached(maze.Pos{X: 1, Z: 9}))
	assert.False(t, g.Reached(maze.Pos{X: 6, Z: 13}))

	t.Run("completion freezes movement and progress", func(t *testing.T) {
		before := g.Pose()
		for i := 0; i < 30; i++ {
			g.Update(dt, Input{Held: physics.Held{Forward: true, Left: true}})
		}
		assert.Equal(t, before, g.Pose())
		assert.Equal(t, snap.Reached, g.Snapshot().Reached)
		assert.True(t, g.Snapshot().Complete)
	})

	t.Run("looking around still works after completion", func(t *testing.T) {
		before := g.Pose()
		g.Update(dt, Input{LookDX: 50, Captured: true})
		after := g.Pose()
		assert.NotEqual(t, before.Yaw, after.Yaw)
		assert.Equal(t, before.Position, after.Position)
	})
}

func TestLookGatedOnCapture(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	g.Update(dt, Input{LookDX: 50, LookDY: 20, Captured: false})
	assert.Zero(t, g.Pose().Yaw)
	assert.Zero(t, g.Pose().Pitch)

	g.Update(dt, Input{LookDX: 50, LookDY: 20, Captured: true})
	assert.NotZero(t, g.Pose().Yaw)
	assert.NotZero(t, g.Pose().Pitch)
}

func TestResetDiscardsEverything(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	drive(t, g, maze.Pos{X: 5, Z: 1}, 1000)
	require.NotEqual(t, maze.Pos{X: 1, Z: 1}, g.Cell())

	g.Reset()

	snap := g.Snapshot()
	assert.False(t, snap.Started)
	assert.False(t, snap.Complete)
	assert.Zero(t, snap.Reached)
	assert.Equal(t, maze.Pos{X: 1, Z: 1}, g.Cell())
	assert.Zero(t, g.Pose().Yaw)
}
