package main

import (
	"flag"
	"io"
	"log"
	"maze-game/config"
	"maze-game/game"
	"maze-game/maze"
	"maze-game/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	// nothing reaches stderr until the debug setting is known
	log.SetOutput(io.Discard)

	cfg, err := config.Load()
	if err != nil {
		config.Fatalf(config.LogApp, "%v", err)
	}

	rows := flag.Int("rows", cfg.Rows, "Maze rows")
	cols := flag.Int("cols", cfg.Cols, "Maze columns")
	seed := flag.Int64("seed", cfg.Seed, "Random seed (0 = time based)")
	debug := flag.Bool("debug", cfg.Debug, "Write logs to the logs directory")
	flag.Parse()

	cfg.Rows, cfg.Cols, cfg.Seed, cfg.Debug = *rows, *cols, *seed, *debug
	if err := cfg.Validate(); err != nil {
		config.Fatalf(config.LogApp, "%v", err)
	}

	logFile, err := config.SetupLogging(cfg.Debug)
	if err != nil {
		config.Fatalf(config.LogApp, "could not open log file: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Maze")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.TargetFPS))

	g, err := game.NewGame(cfg, maze.NewSource(cfg.Seed))
	if err != nil {
		config.Fatalf(config.LogApp, "%v", err)
	}
	log.Printf("%s [INFO] maze:\n%s", config.LogMaze, g.Maze)

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		for _, key := range ui.PollKeys() {
			if err := g.HandleKey(key); err != nil {
				config.Errorf(config.LogGame, "%v", err)
			}
		}

		if renderer.ResetClicked(g) {
			if err := g.Reset(); err != nil {
				config.Errorf(config.LogGame, "%v", err)
			}
		}

		g.Update(float64(rl.GetFrameTime()))
		renderer.Draw(g)
	}

	log.Printf("%s [INFO] session over: %d wins, average %.2fs",
		config.LogApp, g.Stats.Wins(), g.Stats.AverageDuration())
}
