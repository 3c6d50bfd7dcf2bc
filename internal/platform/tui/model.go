package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ScoreRecorder keeps the history of finished runs.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures a Model.
type Options struct {
	// History receives every finished run with a positive score. May be nil.
	History ScoreRecorder

	// Logger receives gameplay and I/O events. Nil discards them.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes screen dumps. Empty disables
	// screenshots.
	ScreenshotDir string

	// Styles overrides the color table, e.g. with one built for an SSH
	// session's renderer.
	Styles map[core.Color]lipgloss.Style
}

// Model is the Bubble Tea model that drives one flappy game.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	queue    core.InputFrame
	interval time.Duration
	status   flappy.Status
	opts     Options
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for game. cfg supplies the initial screen size
// and the tick rate.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Styles == nil {
		opts.Styles = colorStyles
	}

	// The hint is drawn into the cell buffer, so it must stay unstyled
	h := help.New()
	h.Styles = help.Styles{}
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     NewKeyMapper(DefaultKeyMap()),
		help:     h,
		queue:    core.NewInputFrame(),
		interval: cfg.TickDuration(),
		status:   game.Status(),
		opts:     opts,
		logger:   logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.queue.Set(m.keys.MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the mapped action. Input is only applied on the next
// tick, in arrival order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.queue.Set(action)
	return m, nil
}

// handleResize resizes the screen; the run keeps going in the new viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.queue)
	m.status = result.Status
	m.queue.Clear()

	if result.Ended && result.Status.Score > 0 && m.opts.History != nil {
		if _, err := m.opts.History.SaveScore(flappy.ID, result.Status.Score); err != nil {
			m.logger.Warn("could not save score", "score", result.Status.Score, "error", err)
		}
	}

	return m, tickCmd(m.interval)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	path, err := writeScreenshot(m.opts.ScreenshotDir, m.game, m.screen, time.Now())
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func writeScreenshot(dir string, game *flappy.Game, screen *core.Screen, now time.Time) (string, error) {
	game.Render(screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.txt", game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawHelp()
	return RenderScreenWith(m.screen, m.opts.Styles)
}

// drawHelp lists the keys that do something on the title and game-over
// screens, just below the score line.
func (m Model) drawHelp() {
	state := m.game.Status().State
	if state == flappy.StateActive {
		return
	}

	keys := m.keys.Keys()
	keys.Flap.SetEnabled(state == flappy.StateIdle)
	keys.Start.SetEnabled(state == flappy.StateIdle)
	keys.Restart.SetEnabled(state == flappy.StateTerminal)
	m.screen.DrawTextCentered(1, m.help.View(keys), core.ColorGray)
}

// Status returns the game status as of the last tick.
func (m Model) Status() flappy.Status {
	return m.status
}

// Run starts the Bubble Tea program for game and blocks until it quits.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
