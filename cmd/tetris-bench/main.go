package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessionCount := flag.Int("sessions", 1000, "The number of concurrent game sessions.")
	frameStep := flag.Duration("frame", 16*time.Millisecond, "Simulated time advanced per frame.")
	maxActions := flag.Int("actions", 3, "The maximum number of bot actions per session per frame.")
	configPath := flag.String("config", "", "Optional YAML file with the session rules.")
	seed := flag.Uint64("seed", 1, "Base seed for the sessions and the bot.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting headless session benchmark...")

	// 1. Load the rules
	cfg := tetris.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = tetris.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// 2. Register the sessions
	scheduler := driver.NewScheduler()
	log.Printf("Creating %d sessions...\n", *sessionCount)
	for i := 0; i < *sessionCount; i++ {
		sessionCfg := cfg
		sessionCfg.Seed = *seed + uint64(i)
		g, err := tetris.New(sessionCfg)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		scheduler.Add(g)
	}
	log.Println("Sessions ready.")

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessionCount,
		FrameStep:      *frameStep,
		MaxActions:     *maxActions,
		Rules:          cfg,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	// Finished sessions restart on the following frame with a fresh seed.
	nextSeed := *seed + uint64(*sessionCount)
	scheduler.OnGameOver = func(id driver.SessionID, g *tetris.Game) {
		report.BestScore = max(report.BestScore, g.Score())
		scheduler.Commands().Reset(id, nextSeed)
		nextSeed++
		report.Restarts++
	}

	b := newBot(*seed, *maxActions)

	runtime.ReadMemStats(&report.MemStatsStart)

	// 3. Run the frame loop
	log.Printf("Running benchmark for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames, totalActions int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			b.play(scheduler)

			frameStart := time.Now()
			results := scheduler.Once(*frameStep)
			frameDuration := time.Since(frameStart)

			report.FrameTime.Samples = append(report.FrameTime.Samples, frameDuration)
			totalActions += int64(len(results))
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.TotalActions = totalActions
	report.SimulatedTime = time.Duration(totalFrames) * *frameStep
	report.FrameTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	for _, id := range scheduler.Sessions() {
		if g, ok := scheduler.Session(id); ok {
			report.BestScore = max(report.BestScore, g.Score())
		}
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Benchmark finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Benchmark complete.")
}
