package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerun/internal/maze"
)

func TestLifecycle(t *testing.T) {
	s := New(3, nil)
	defer s.Close()

	t.Run("initial state", func(t *testing.T) {
		snap := s.Snapshot()
		assert.False(t, snap.Started)
		assert.False(t, snap.Complete)
		assert.Zero(t, snap.Elapsed)
		assert.Zero(t, snap.Reached)
		assert.Equal(t, 3, snap.Total)
		assert.False(t, s.Running())
	})

	t.Run("visit before start has no effect", func(t *testing.T) {
		assert.False(t, s.Visit(maze.Pos{X: 13, Z: 5}))
		assert.Zero(t, s.Snapshot().Reached)
	})

	t.Run("finish before start has no effect", func(t *testing.T) {
		s.Finish()
		assert.False(t, s.Complete())
	})

	t.Run("start", func(t *testing.T) {
		s.Start()
		assert.True(t, s.Started())
		assert.True(t, s.Running())

		// Starting again is a no-op.
		s.Start()
		assert.True(t, s.Running())
	})

	t.Run("checkpoints are monotonic and idempotent", func(t *testing.T) {
		assert.True(t, s.Visit(maze.Pos{X: 13, Z: 5}))
		assert.False(t, s.Visit(maze.Pos{X: 13, Z: 5}), "revisit is a no-op")
		assert.True(t, s.Visit(maze.Pos{X: 1, Z: 9}))

		assert.True(t, s.Reached(maze.Pos{X: 13, Z: 5}))
		assert.True(t, s.Reached(maze.Pos{X: 1, Z: 9}))
		assert.False(t, s.Reached(maze.Pos{X: 6, Z: 13}))
		assert.Equal(t, 2, s.Snapshot().Reached)
	})

	t.Run("finish is terminal and idempotent", func(t *testing.T) {
		s.Finish()
		require.True(t, s.Complete())
		assert.False(t, s.Running())

		elapsed := s.Snapshot().Elapsed
		s.Finish()
		assert.True(t, s.Complete())

		// Elapsed is frozen at the finish time.
		time.Sleep(250 * time.Millisecond)
		assert.Equal(t, elapsed, s.Snapshot().Elapsed)

		// The checkpoint set no longer changes.
		assert.False(t, s.Visit(maze.Pos{X: 6, Z: 13}))
		assert.Equal(t, 2, s.Snapshot().Reached)
	})
}

func TestElapsedAdvancesWhileRunning(t *testing.T) {
	s := New(0, nil)
	defer s.Close()

	s.Start()
	time.Sleep(250 * time.Millisecond)
	assert.Greater(t, s.Snapshot().Elapsed, 100*time.Millisecond)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := New(0, nil)
	s.Close()
	s.Close()
}
