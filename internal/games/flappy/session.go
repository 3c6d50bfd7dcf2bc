package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the session lifecycle: Idle -> Active -> Terminal -> Idle.
type State int

const (
	StateIdle     State = iota // Title screen, bird bobbing
	StateActive                // Playing
	StateTerminal              // Crashed, waiting for restart
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// BestScoreStore persists the single best-score record.
type BestScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// Status is the externally visible part of the session.
type Status struct {
	State     State
	Score     int
	BestScore int
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	Status  Status
	Ended   bool   // The run ended during this tick
	Cause   string // "floor" or "pipe" when Ended
	NewBest bool   // Ended with a score above the previous best
}

// Session owns the lifecycle, the score pair, the tick counter and the
// three simulated components. All mutation goes through Step.
type Session struct {
	cfg      config.FlappyConfig
	actor    *Actor
	field    *ObstacleField
	parallax *Parallax

	state     State
	score     int
	best      int
	tickCount int
	idleTime  time.Duration
	tickDur   time.Duration
	seed      int64
	runs      int64
	newBest   bool
	viewport  core.Viewport

	store  BestScoreStore
	logger *log.Logger
}

// NewSession creates a session on the title screen. The best score is read
// from store once; a missing store or a failed read starts from zero.
func NewSession(cfg config.FlappyConfig, rc core.RuntimeConfig, store BestScoreStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:      cfg,
		actor:    NewActor(cfg),
		field:    NewObstacleField(rc.Seed, cfg.Obstacles),
		parallax: NewParallax(cfg.Parallax.Speed),
		state:    StateIdle,
		tickDur:  rc.TickDuration(),
		seed:     rc.Seed,
		store:    store,
		logger:   logger,
	}
	s.best = s.loadBest()
	return s
}

func (s *Session) loadBest() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.LoadBestScore()
	if err != nil {
		s.logger.Warn("could not load best score, starting from zero", "error", err)
		return 0
	}
	if best < 0 {
		s.logger.Warn("ignoring negative best score", "value", best)
		return 0
	}
	return best
}

// Step drains the queued input, then advances one tick: parallax always,
// actor and obstacles only while active.
func (s *Session) Step(in core.InputFrame, vp core.Viewport) StepResult {
	for _, a := range in.Actions() {
		s.handle(a)
	}

	s.viewport = vp
	s.parallax.Update(vp.TileWidth)

	var result StepResult
	switch s.state {
	case StateIdle:
		s.idleTime += s.tickDur
		s.actor.Bob(s.idleTime)

	case StateActive:
		onFloor := s.actor.Integrate(float64(vp.Height))
		passed, hitPipe := s.field.Update(s.actor, vp.Width, vp.Height, s.tickCount)
		s.score += passed
		s.tickCount++

		if onFloor || hitPipe {
			cause := "pipe"
			if onFloor {
				cause = "floor"
			}
			result.Ended = true
			result.Cause = cause
			result.NewBest = s.terminate(cause)
		}

	case StateTerminal:
		// Frozen until restart
	}

	result.Status = s.Status()
	return result
}

// handle applies one input event. Events that mean nothing in the current
// state are dropped.
func (s *Session) handle(a core.Action) {
	switch s.state {
	case StateIdle:
		if a == core.ActionFlap || a == core.ActionStart {
			s.state = StateActive
			s.actor.Flap()
			s.logger.Debug("run started", "run", s.runs+1)
		}
	case StateActive:
		if a == core.ActionFlap {
			s.actor.Flap()
		}
	case StateTerminal:
		if a == core.ActionRestart {
			s.reset()
		}
	}
}

// terminate moves to Terminal and records a new best if there is one.
func (s *Session) terminate(cause string) bool {
	s.state = StateTerminal
	s.logger.Info("run ended", "score", s.score, "best", s.best, "cause", cause, "ticks", s.tickCount)

	if s.score <= s.best {
		return false
	}

	s.best = s.score
	s.newBest = true
	if s.store != nil {
		if err := s.store.SaveBestScore(s.best); err != nil {
			s.logger.Warn("could not save best score", "score", s.best, "error", err)
		}
	}
	return true
}

// reset returns to the title screen with a fresh run. Components are
// cleared in place.
func (s *Session) reset() {
	s.runs++
	s.actor.Reset()
	s.field.Reset(s.seed + s.runs)
	s.score = 0
	s.tickCount = 0
	s.idleTime = 0
	s.newBest = false
	s.state = StateIdle
}

// Status returns state, score and best score.
func (s *Session) Status() Status {
	return Status{
		State:     s.state,
		Score:     s.score,
		BestScore: s.best,
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the number of pairs passed in the current run.
func (s *Session) Score() int {
	return s.score
}

// BestScore returns the best score known to this session.
func (s *Session) BestScore() int {
	return s.best
}

// TickCount returns the number of active ticks in the current run.
func (s *Session) TickCount() int {
	return s.tickCount
}
