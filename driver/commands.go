package driver

import (
	"errors"

	"github.com/plus3/blockfall/tetris"
)

// ErrUnknownSession is reported for commands aimed at a session that is not
// registered.
var ErrUnknownSession = errors.New("driver: unknown session")

// Commands buffers input for the sessions of a scheduler. The buffer is
// applied at the start of the next frame so producers never touch a game
// while it is being ticked.
type Commands struct {
	actions []actionCommand
	resets  []resetCommand
	removes []SessionID
}

type actionCommand struct {
	session SessionID
	action  tetris.Action
}

type resetCommand struct {
	session SessionID
	seed    uint64
}

// Result is the outcome of one queued action.
type Result struct {
	Session SessionID
	Action  tetris.Action
	Err     error
}

// Queue adds an input action for a session.
func (c *Commands) Queue(id SessionID, a tetris.Action) {
	c.actions = append(c.actions, actionCommand{session: id, action: a})
}

// Reset queues a restart of a session with a new seed. It is a no-op if the
// session is gone by the time the buffer is flushed.
func (c *Commands) Reset(id SessionID, seed uint64) {
	c.resets = append(c.resets, resetCommand{session: id, seed: seed})
}

// Remove queues a session removal.
func (c *Commands) Remove(id SessionID) {
	c.removes = append(c.removes, id)
}

// Len reports the number of queued commands.
func (c *Commands) Len() int {
	return len(c.actions) + len(c.resets) + len(c.removes)
}

// Flush applies every queued command to s and empties the buffer. Removals
// run first, then resets, then actions in the order they were queued.
// Results are returned for actions only: actions for sessions removed in
// this flush are dropped, actions for any other unregistered session report
// ErrUnknownSession, and resets for unregistered sessions are ignored.
func (c *Commands) Flush(s *Scheduler) []Result {
	removed := make(map[SessionID]bool, len(c.removes))
	for _, id := range c.removes {
		s.Remove(id)
		removed[id] = true
	}

	for _, cmd := range c.resets {
		if e, ok := s.sessions.Get(cmd.session); ok {
			e.game.Reset(cmd.seed)
			e.finished = false
		}
	}

	var results []Result
	if len(c.actions) > 0 {
		results = make([]Result, 0, len(c.actions))
	}
	for _, cmd := range c.actions {
		if removed[cmd.session] {
			continue
		}
		r := Result{Session: cmd.session, Action: cmd.action}
		if e, ok := s.sessions.Get(cmd.session); ok {
			r.Err = e.game.Apply(cmd.action)
		} else {
			r.Err = ErrUnknownSession
		}
		results = append(results, r)
	}

	c.actions = c.actions[:0]
	c.resets = c.resets[:0]
	c.removes = c.removes[:0]
	return results
}
