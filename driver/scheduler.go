// Package driver runs many game sessions headlessly on a shared frame clock.
package driver

import (
	"context"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// SessionID identifies a session registered with a Scheduler.
type SessionID uint32

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Frames        int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration

	Sessions  int
	Live      int
	Finished  int
	GamesOver int64

	// Totals over the registered sessions' current games.
	Locks int
	Lines int
	Score int
}

type session struct {
	game     *tetris.Game
	finished bool
}

// Scheduler owns a set of sessions and advances all of them once per frame.
// It is not safe for concurrent use.
type Scheduler struct {
	sessions *intmap.Map[SessionID, *session]
	nextID   SessionID
	commands *Commands

	// OnGameOver is called during Once for each session whose game ended in
	// that frame.
	OnGameOver func(id SessionID, g *tetris.Game)

	frames        int64
	gamesOver     int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		sessions:    intmap.New[SessionID, *session](64),
		commands:    &Commands{},
		minDuration: time.Duration(1<<63 - 1),
	}
}

// Add registers a game and returns its session id.
func (s *Scheduler) Add(g *tetris.Game) SessionID {
	s.nextID++
	id := s.nextID
	s.sessions.Put(id, &session{game: g, finished: g.Over()})
	return id
}

// Remove unregisters a session immediately. Use Commands().Remove to
// defer the removal to the next frame.
func (s *Scheduler) Remove(id SessionID) bool {
	return s.sessions.Del(id)
}

// Session returns the game registered under id.
func (s *Scheduler) Session(id SessionID) (*tetris.Game, bool) {
	e, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return e.game, true
}

// Sessions returns the registered ids in ascending order.
func (s *Scheduler) Sessions() []SessionID {
	ids := make([]SessionID, 0, s.sessions.Len())
	s.sessions.ForEach(func(id SessionID, _ *session) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)
	return ids
}

// Len reports the number of registered sessions.
func (s *Scheduler) Len() int {
	return s.sessions.Len()
}

// Commands returns the buffer flushed at the start of every frame.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Queue buffers an action for the next frame.
func (s *Scheduler) Queue(id SessionID, a tetris.Action) {
	s.commands.Queue(id, a)
}

// Once flushes queued commands, then advances every live session by dt.
// Sessions whose game is over stay registered but are not ticked until
// their game is reset, either through Commands().Reset or directly on the
// game returned by Session. OnGameOver fires once per finished game. The
// results of the flushed actions are returned.
func (s *Scheduler) Once(dt time.Duration) []Result {
	start := time.Now()

	results := s.commands.Flush(s)

	var ended []SessionID
	s.sessions.ForEach(func(id SessionID, e *session) bool {
		if e.finished {
			if e.game.Over() {
				return true
			}
			// Reset directly through Session.
			e.finished = false
		}
		// Tick only fails once the game is over, which is checked below.
		_ = e.game.Tick(dt)
		if e.game.Over() {
			e.finished = true
			ended = append(ended, id)
		}
		return true
	})

	s.gamesOver += int64(len(ended))
	if s.OnGameOver != nil {
		slices.Sort(ended)
		for _, id := range ended {
			if e, ok := s.sessions.Get(id); ok {
				s.OnGameOver(id, e.game)
			}
		}
	}

	duration := time.Since(start)
	s.frames++
	s.lastDuration = duration
	s.totalDuration += duration
	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}
	return results
}

// Run advances all sessions at the given interval until the context is
// cancelled. Each frame is ticked by the wall time since the previous one.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about frame execution and the sessions.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Frames:        s.frames,
		MaxDuration:   s.maxDuration,
		LastDuration:  s.lastDuration,
		TotalDuration: s.totalDuration,
		Sessions:      s.sessions.Len(),
		GamesOver:     s.gamesOver,
	}
	if s.frames > 0 {
		stats.MinDuration = s.minDuration
		stats.AvgDuration = s.totalDuration / time.Duration(s.frames)
	}

	s.sessions.ForEach(func(_ SessionID, e *session) bool {
		if e.game.Over() {
			stats.Finished++
		} else {
			stats.Live++
		}
		stats.Locks += e.game.Locks()
		stats.Lines += e.game.Lines()
		stats.Score += e.game.Score()
		return true
	})
	return stats
}
