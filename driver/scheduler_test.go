package driver_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, shapes ...tetris.Shape) *tetris.Game {
	t.Helper()
	g, err := tetris.NewWithRandomizer(tetris.DefaultConfig(), tetris.NewSequence(shapes...))
	require.NoError(t, err)
	return g
}

func TestScheduler(t *testing.T) {
	t.Run("sessions spawn on the first frame", func(t *testing.T) {
		s := driver.NewScheduler()
		a := s.Add(newGame(t, tetris.O))
		b := s.Add(newGame(t, tetris.T))

		assert.Equal(t, []driver.SessionID{a, b}, s.Sessions())
		assert.Equal(t, 2, s.Len())

		s.Once(0)

		for _, id := range []driver.SessionID{a, b} {
			g, ok := s.Session(id)
			require.True(t, ok)
			_, ok = g.Active()
			assert.True(t, ok)
		}

		_, ok := s.Session(99)
		assert.False(t, ok)
	})

	t.Run("queued actions apply in order at the next frame", func(t *testing.T) {
		s := driver.NewScheduler()
		id := s.Add(newGame(t, tetris.O))
		s.Once(0)

		s.Queue(id, tetris.ActionMoveLeft)
		s.Queue(99, tetris.ActionHold)
		s.Queue(id, tetris.ActionHardDrop)
		assert.Equal(t, 3, s.Commands().Len())

		g, _ := s.Session(id)
		assert.Equal(t, 0, g.Locks(), "nothing applied before the frame")

		results := s.Once(0)
		require.Len(t, results, 3)
		assert.Equal(t, driver.Result{Session: id, Action: tetris.ActionMoveLeft}, results[0])
		assert.Equal(t, driver.SessionID(99), results[1].Session)
		assert.ErrorIs(t, results[1].Err, driver.ErrUnknownSession)
		assert.NoError(t, results[2].Err)

		assert.Equal(t, 1, g.Locks())
		assert.Equal(t, "...OO.....", g.Grid().Rows()[21])
		assert.Equal(t, 0, s.Commands().Len())
	})

	t.Run("finished sessions stay registered until reset", func(t *testing.T) {
		s := driver.NewScheduler()
		var ended []driver.SessionID
		s.OnGameOver = func(id driver.SessionID, g *tetris.Game) {
			assert.True(t, g.Over())
			ended = append(ended, id)
		}

		id := s.Add(newGame(t, tetris.O))
		other := s.Add(newGame(t, tetris.T))
		s.Once(0)

		for range 11 {
			s.Queue(id, tetris.ActionHardDrop)
		}
		results := s.Once(time.Millisecond)
		require.Len(t, results, 11)
		assert.NoError(t, results[9].Err)
		assert.ErrorIs(t, results[10].Err, tetris.ErrGameOver)
		assert.Equal(t, []driver.SessionID{id}, ended)

		stats := s.GetStats()
		assert.Equal(t, 2, stats.Sessions)
		assert.Equal(t, 1, stats.Finished)
		assert.Equal(t, 1, stats.Live)
		assert.Equal(t, int64(1), stats.GamesOver)
		assert.Equal(t, 11, stats.Locks)
		assert.Equal(t, 220, stats.Score, "2 points per row dropped: 20+18+...+0")

		s.Once(time.Second)
		assert.Equal(t, []driver.SessionID{id}, ended, "not reported twice")

		s.Commands().Reset(id, 5)
		s.Once(0)
		g, _ := s.Session(id)
		assert.False(t, g.Over())
		_, ok := g.Active()
		assert.True(t, ok)

		stats = s.GetStats()
		assert.Equal(t, 2, stats.Live)
		assert.Equal(t, 0, stats.Locks)

		_, ok = s.Session(other)
		assert.True(t, ok)
	})

	t.Run("games reset through Session resume ticking", func(t *testing.T) {
		s := driver.NewScheduler()
		var ended int
		s.OnGameOver = func(driver.SessionID, *tetris.Game) { ended++ }

		id := s.Add(newGame(t, tetris.O))
		s.Once(0)
		for range 11 {
			s.Queue(id, tetris.ActionHardDrop)
		}
		s.Once(0)
		require.Equal(t, 1, ended)

		g, _ := s.Session(id)
		g.Reset(7)
		assert.Equal(t, 1, s.GetStats().Live)

		s.Once(0)
		_, ok := g.Active()
		assert.True(t, ok, "reset game spawns on the next frame")
		stats := s.GetStats()
		assert.Equal(t, 1, stats.Live)
		assert.Equal(t, 0, stats.Finished)

		for range 11 {
			s.Queue(id, tetris.ActionHardDrop)
		}
		s.Once(0)
		assert.Equal(t, 2, ended, "the second game is reported too")
		assert.Equal(t, int64(2), s.GetStats().GamesOver)
	})

	t.Run("resets for unknown sessions are ignored", func(t *testing.T) {
		s := driver.NewScheduler()
		id := s.Add(newGame(t, tetris.T))
		s.Once(0)

		s.Commands().Reset(99, 1)
		s.Commands().Remove(id)
		s.Commands().Reset(id, 1)
		assert.Empty(t, s.Once(0))
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 0, s.Commands().Len())
	})

	t.Run("removal drops pending actions", func(t *testing.T) {
		s := driver.NewScheduler()
		id := s.Add(newGame(t, tetris.I))
		keep := s.Add(newGame(t, tetris.I))
		s.Once(0)

		s.Queue(id, tetris.ActionHardDrop)
		s.Commands().Remove(id)
		results := s.Once(0)

		assert.Empty(t, results)
		assert.Equal(t, []driver.SessionID{keep}, s.Sessions())
		assert.False(t, s.Remove(id))
		assert.True(t, s.Remove(keep))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("frame statistics", func(t *testing.T) {
		s := driver.NewScheduler()
		s.Add(newGame(t, tetris.T))

		empty := s.GetStats()
		assert.Equal(t, int64(0), empty.Frames)
		assert.Equal(t, time.Duration(0), empty.MinDuration)

		for range 10 {
			s.Once(16 * time.Millisecond)
		}

		stats := s.GetStats()
		assert.Equal(t, int64(10), stats.Frames)
		assert.LessOrEqual(t, stats.MinDuration, stats.AvgDuration)
		assert.LessOrEqual(t, stats.AvgDuration, stats.MaxDuration)
		assert.LessOrEqual(t, stats.MaxDuration, stats.TotalDuration)
	})
}

func TestSchedulerRun(t *testing.T) {
	s := driver.NewScheduler()
	id := s.Add(newGame(t, tetris.O))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	s.Run(ctx, 5*time.Millisecond)

	assert.Positive(t, s.GetStats().Frames)
	g, _ := s.Session(id)
	_, ok := g.Active()
	assert.True(t, ok)
}
