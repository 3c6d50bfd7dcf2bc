package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/Click  - Flap (also starts a run)
  Enter           - Start
  R               - Restart (after game over)
  Ctrl+S          - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C        - Quit

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml --log-file /tmp/flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	checkFPS()
	gameCfg := loadGameConfig()

	err := withLogFile(flagLogFile, logLevel(), func(logger *log.Logger) error {
		return playGame(gameCfg, logger)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withLogFile opens the play log, runs fn with it and closes the file
// before returning fn's error. A failed run is logged first.
func withLogFile(path string, level log.Level, fn func(*log.Logger) error) error {
	logger, closeLog, err := logging.File(path, level)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := fn(logger); err != nil {
		logger.Error("game exited", "error", err)
		return err
	}
	return nil
}

func playGame(gameCfg config.FlappyConfig, logger *log.Logger) error {
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	logger.Info("starting", "cols", rc.ScreenW, "rows", rc.ScreenH, "fps", rc.TickRate, "seed", rc.Seed)

	opts := tui.Options{
		Logger:        logger,
		ScreenshotDir: config.UserPath("screenshots"),
	}

	// The game still works without storage; the best score starts at zero
	var best flappy.BestScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		defer store.Close()
		best = store.Best(tui.BestScoreRecord(""))
		opts.History = store
	}

	game := flappy.New(gameCfg, rc, best, logger)
	return tui.Run(game, rc, opts)
}
