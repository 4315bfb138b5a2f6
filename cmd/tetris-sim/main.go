package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/plus3/blockfall/simulate"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	width := flag.Int("width", simulate.DefaultWidth, "Width of the well in columns.")
	printGrids := flag.Bool("print", false, "Print the final grid of every line to stderr.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input> <output>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	in, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := simulate.Runner{Width: *width}
	if *printGrids {
		runner.OnGrid = func(line int, g *tetris.Grid) error {
			fmt.Fprintf(os.Stderr, "line %d: height %d\n", line, simulate.Height(g))
			return simulate.PrintGrid(os.Stderr, g)
		}
	}

	log.Printf("Simulating %s -> %s (width %d)...\n", inputPath, outputPath, *width)
	runErr := runner.Run(ctx, in, out)
	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		log.Fatalf("Simulation failed: %v", runErr)
	}
	log.Println("Simulation complete.")
}
