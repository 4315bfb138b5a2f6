package driver_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
)

func ExampleScheduler() {
	s := driver.NewScheduler()

	for range 3 {
		g, err := tetris.NewWithRandomizer(tetris.DefaultConfig(), tetris.NewSequence(tetris.O))
		if err != nil {
			panic(err)
		}
		s.Add(g)
	}

	// Spawn every session, then hard drop in all of them on the next frame.
	s.Once(0)
	for _, id := range s.Sessions() {
		s.Queue(id, tetris.ActionHardDrop)
	}
	s.Once(16 * time.Millisecond)

	stats := s.GetStats()
	fmt.Println("frames:", stats.Frames)
	fmt.Println("live:", stats.Live)
	fmt.Println("locks:", stats.Locks)
	// Output:
	// frames: 2
	// live: 3
	// locks: 3
}

func ExampleCommands() {
	s := driver.NewScheduler()
	g, _ := tetris.NewWithRandomizer(tetris.DefaultConfig(), tetris.NewSequence(tetris.I))
	id := s.Add(g)
	s.Once(0)

	cmds := s.Commands()
	cmds.Queue(id, tetris.ActionRotateCW)
	cmds.Queue(id, tetris.ActionHold)
	cmds.Queue(id, tetris.ActionHold)

	for _, r := range s.Once(0) {
		fmt.Println(r.Action, r.Err)
	}
	// Output:
	// rotate-cw <nil>
	// hold <nil>
	// hold tetris: hold unavailable
}
