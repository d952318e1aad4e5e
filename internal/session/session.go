// Package session tracks one play-through: the not-started -> running ->
// complete state machine, the set of reached checkpoints, and a background
// clock refresh that exists only so the HUD can show a live timer.
package session

import (
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mazerun/internal/maze"
)

// clockInterval is the cadence of the HUD clock refresh. It has no gameplay
// effect and never drives state transitions.
const clockInterval = 100 * time.Millisecond

// Session is one play-through. Transitions are one-way: Start and Finish
// each take effect exactly once, and Complete is terminal. A restart means
// discarding the session and constructing a fresh one; there is no partial
// reset.
type Session struct {
	id  uuid.UUID
	log *logrus.Logger

	mu          sync.Mutex
	started     bool
	complete    bool
	startedAt   time.Time
	finishedAt  time.Time
	currentTime time.Time
	reached     map[maze.Pos]struct{}
	total       int

	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// Snapshot is the read-only view the HUD renders from.
type Snapshot struct {
	Started  bool
	Complete bool
	Elapsed  time.Duration
	Reached  int
	Total    int
}

// New returns a not-started session and starts its clock refresh. Close
// must be called to stop the clock. A nil log discards session logging.
func New(totalCheckpoints int, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	s := &Session{
		id:          uuid.New(),
		log:         log,
		currentTime: time.Now(),
		reached:     make(map[maze.Pos]struct{}),
		total:       totalCheckpoints,
		ticker:      time.NewTicker(clockInterval),
		done:        make(chan struct{}),
	}
	go s.refreshClock()
	return s
}

func (s *Session) refreshClock() {
	for {
		select {
		case t := <-s.ticker.C:
			s.mu.Lock()
			s.currentTime = t
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

// Close stops the clock refresh. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.ticker.Stop()
		close(s.done)
	})
}

// ID returns the session identity used in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Start moves NotStarted -> Running and stamps the start time. Calling it
// again is a no-op; the original start time stands.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	now := time.Now()
	s.startedAt = now
	s.currentTime = now
	s.log.WithField("session", s.id).Info("session started")
}

// Started reports whether Start has been called.
func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Running reports started-and-not-complete, the state in which movement and
// progress tracking are live.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started && !s.complete
}

// Complete reports whether the finish cell has been reached.
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// Visit records a checkpoint cell. The set only grows: revisiting is a
// no-op, and nothing ever removes a reached checkpoint. Returns true when
// the checkpoint is new. Ignored unless the session is running.
func (s *Session) Visit(p maze.Pos) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.complete {
		return false
	}
	if _, ok := s.reached[p]; ok {
		return false
	}
	s.reached[p] = struct{}{}
	s.log.WithFields(logrus.Fields{
		"session":    s.id,
		"checkpoint": p,
		"reached":    len(s.reached),
		"total":      s.total,
	}).Info("checkpoint reached")
	return true
}

// Reached reports whether a checkpoint cell has been visited.
func (s *Session) Reached(p maze.Pos) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.reached[p]
	return ok
}

// Finish moves Running -> Complete and freezes the elapsed time. Calling it
// when already complete, or before Start, is a no-op.
func (s *Session) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.complete {
		return
	}
	s.complete = true
	s.finishedAt = time.Now()
	s.log.WithFields(logrus.Fields{
		"session": s.id,
		"elapsed": s.finishedAt.Sub(s.startedAt),
		"reached": len(s.reached),
		"total":   s.total,
	}).Info("maze complete")
}

// Snapshot returns the current HUD view. Elapsed advances at the clock
// refresh cadence while running and is frozen at the finish time once
// complete.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Started:  s.started,
		Complete: s.complete,
		Reached:  len(s.reached),
		Total:    s.total,
	}
	switch {
	case !s.started:
	case s.complete:
		snap.Elapsed = s.finishedAt.Sub(s.startedAt)
	default:
		snap.Elapsed = s.currentTime.Sub(s.startedAt)
	}
	if snap.Elapsed < 0 {
		snap.Elapsed = 0
	}
	return snap
}
