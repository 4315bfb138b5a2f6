package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
)

// botActions is weighted towards sideways moves so pieces spread across the
// well before they are dropped.
var botActions = []tetris.Action{
	tetris.ActionMoveLeft, tetris.ActionMoveLeft, tetris.ActionMoveLeft,
	tetris.ActionMoveRight, tetris.ActionMoveRight, tetris.ActionMoveRight,
	tetris.ActionRotateCW, tetris.ActionRotateCCW,
	tetris.ActionMoveDown,
	tetris.ActionSoftDropOn, tetris.ActionSoftDropOff,
	tetris.ActionHold,
	tetris.ActionHardDrop,
}

// bot queues random input for every live session.
type bot struct {
	rng        *rand.Rand
	maxActions int
}

func newBot(seed uint64, maxActions int) *bot {
	return &bot{
		rng:        rand.New(rand.NewPCG(seed, seed+1)),
		maxActions: maxActions,
	}
}

func (b *bot) play(s *driver.Scheduler) int {
	queued := 0
	for _, id := range s.Sessions() {
		g, ok := s.Session(id)
		if !ok || g.Over() {
			continue
		}
		for range b.rng.IntN(b.maxActions + 1) {
			s.Queue(id, botActions[b.rng.IntN(len(botActions))])
			queued++
		}
	}
	return queued
}
