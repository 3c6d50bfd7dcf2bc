package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one
// frame. It shares no memory with the session.
type Snapshot struct {
	State     State
	Score     int
	BestScore int
	NewBest   bool // Terminal with a score that beat the previous best
	Tick      int

	ActorX      float64
	ActorY      float64
	ActorTilt   float64
	ActorRadius float64

	Obstacles     []Obstacle
	GapHeight     float64
	ObstacleWidth float64

	ParallaxOffset float64
	Viewport       core.Viewport
}

// Snapshot captures the current frame state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.field.Obstacles()))
	copy(obstacles, s.field.Obstacles())

	return Snapshot{
		State:          s.state,
		Score:          s.score,
		BestScore:      s.best,
		NewBest:        s.newBest,
		Tick:           s.tickCount,
		ActorX:         s.actor.X,
		ActorY:         s.actor.Y,
		ActorTilt:      s.actor.Tilt,
		ActorRadius:    s.actor.Radius,
		Obstacles:      obstacles,
		GapHeight:      s.field.GapHeight(),
		ObstacleWidth:  s.field.Width(),
		ParallaxOffset: s.parallax.Offset,
		Viewport:       s.viewport,
	}
}
