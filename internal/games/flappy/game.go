// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through gaps between scrolling pipe pairs; each
// pair passed scores a point and the best score survives restarts.
package flappy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ID identifies the game in score storage.
const ID = "flappy"

// Game binds a Session to a terminal screen size. It converts the screen's
// columns and rows into the logical viewport the session simulates in.
type Game struct {
	session   *Session
	scale     core.Scale
	tileWidth float64
	cols      int
	rows      int
}

// New creates a game sized from rc.
func New(cfg config.FlappyConfig, rc core.RuntimeConfig, store BestScoreStore, logger *log.Logger) *Game {
	return &Game{
		session:   NewSession(cfg, rc, store, logger),
		scale:     core.Scale{CellW: cfg.Render.CellWidth, CellH: cfg.Render.CellHeight},
		tileWidth: cfg.Parallax.TileWidth,
		cols:      rc.ScreenW,
		rows:      rc.ScreenH,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Resize changes the screen size. The run continues; the next Step uses
// the new viewport.
func (g *Game) Resize(cols, rows int) {
	g.cols = cols
	g.rows = rows
}

// Viewport returns the current logical viewport.
func (g *Game) Viewport() core.Viewport {
	w, h := g.scale.Viewport(g.cols, g.rows)
	return core.Viewport{Width: w, Height: h, TileWidth: g.tileWidth}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	return g.session.Step(in, g.Viewport())
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	// Before the first tick the session has not seen a viewport yet
	snap.Viewport = g.Viewport()
	Render(dst, snap, g.scale)
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Status returns state, score and best score.
func (g *Game) Status() Status {
	return g.session.Status()
}
