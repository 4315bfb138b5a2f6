package tetris_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Example_lineClear drops two I pieces and an O piece to complete the
// bottom row.
func Example_lineClear() {
	cfg := tetris.DefaultConfig()
	g, err := tetris.NewWithRandomizer(cfg, tetris.NewSequence(tetris.I, tetris.I, tetris.O))
	if err != nil {
		panic(err)
	}
	if err := g.Tick(0); err != nil {
		panic(err)
	}

	play := func(dir tetris.Direction, steps int) {
		for range steps {
			_ = g.Move(dir)
		}
		if _, err := g.HardDrop(); err != nil {
			panic(err)
		}
	}
	play(tetris.Left, 3)
	play(tetris.Right, 1)
	play(tetris.Right, 4)

	fmt.Println("lines:", g.Lines())
	fmt.Println("score:", g.Score())
	fmt.Println(g.Grid().Rows()[g.BufferRows()+g.Height()-1])
	// Output:
	// lines: 1
	// score: 220
	// ........OO
}

func ExampleGame_Tick() {
	cfg := tetris.DefaultConfig()
	cfg.Gravity = 50 * time.Millisecond
	g, _ := tetris.NewWithRandomizer(cfg, tetris.NewSequence(tetris.T))

	for frame := 0; frame < 10; frame++ {
		_ = g.Tick(16 * time.Millisecond)
	}
	p, _ := g.Active()
	fmt.Println(p.Shape, p.Y, g.Phase())
	// Output:
	// T 3 falling
}
