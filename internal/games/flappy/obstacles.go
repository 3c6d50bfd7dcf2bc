package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Obstacle is a pair of pipes sharing one vertical gap.
type Obstacle struct {
	X       float64 // Horizontal position (left edge)
	GapTopY float64 // Y where the gap starts; it spans GapHeight below
	Passed  bool    // Whether the actor has passed this pair (for scoring)
}

// ObstacleField spawns, moves, scores and prunes obstacle pairs.
// Pairs are kept in spawn order, which is also left-to-right order.
type ObstacleField struct {
	items []Obstacle
	rng   *rand.Rand
	cfg   config.Obstacles
}

// NewObstacleField creates an empty field with the given RNG seed.
func NewObstacleField(seed int64, cfg config.Obstacles) *ObstacleField {
	f := &ObstacleField{
		items: make([]Obstacle, 0, 8),
		cfg:   cfg,
	}
	f.Reset(seed)
	return f
}

// Reset clears all pairs and reseeds the RNG.
func (f *ObstacleField) Reset(seed int64) {
	f.items = f.items[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Update runs one tick of the field: spawn, advance, score, collide, prune.
// It returns the number of pairs the actor passed this tick and whether the
// actor overlaps a pipe. Viewport size is read fresh on every call.
func (f *ObstacleField) Update(a *Actor, viewportW, viewportH, tick int) (passed int, hit bool) {
	if tick%f.cfg.SpawnInterval == 0 {
		f.spawn(viewportW, viewportH)
	}

	for i := range f.items {
		f.items[i].X -= f.cfg.Speed
	}

	// Trailing edge strictly left of the actor's center counts as passed
	for i := range f.items {
		if !f.items[i].Passed && f.items[i].X+f.cfg.Width < a.X {
			f.items[i].Passed = true
			passed++
		}
	}

	for _, p := range f.items {
		if f.collides(a, p) {
			hit = true
			break
		}
	}

	f.prune()

	return passed, hit
}

// spawn appends a pair at the right edge. The gap top is drawn uniformly
// from the whole numbers in [minSegment, viewportH-minSegment-gap]; when the
// viewport is too short for that range nothing is spawned.
func (f *ObstacleField) spawn(viewportW, viewportH int) {
	lo := math.Ceil(f.cfg.MinSegment)
	hi := math.Floor(float64(viewportH) - f.cfg.MinSegment - f.cfg.GapHeight)
	if hi < lo {
		return
	}

	span := int64(hi-lo) + 1
	f.items = append(f.items, Obstacle{
		X:       float64(viewportW),
		GapTopY: lo + float64(f.rng.Int63n(span)),
	})
}

// collides reports whether the actor overlaps p horizontally while not
// being fully inside its gap.
func (f *ObstacleField) collides(a *Actor, p Obstacle) bool {
	if a.X+a.Radius <= p.X || a.X-a.Radius >= p.X+f.cfg.Width {
		return false
	}
	return a.Top() < p.GapTopY || a.Bottom() > p.GapTopY+f.cfg.GapHeight
}

// prune drops pairs whose trailing edge is past the left boundary,
// compacting in place and preserving order.
func (f *ObstacleField) prune() {
	kept := f.items[:0]
	for _, p := range f.items {
		if p.X+f.cfg.Width >= 0 {
			kept = append(kept, p)
		}
	}
	// Zero the tail so dropped values don't linger in the backing array
	for i := len(kept); i < len(f.items); i++ {
		f.items[i] = Obstacle{}
	}
	f.items = kept
}

// Obstacles returns the current pairs, oldest first. The slice is owned by
// the field and is only valid until the next Update.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.items
}

// Len returns the number of live pairs.
func (f *ObstacleField) Len() int {
	return len(f.items)
}

// GapHeight returns the configured gap height.
func (f *ObstacleField) GapHeight() float64 {
	return f.cfg.GapHeight
}

// Width returns the configured pipe width.
func (f *ObstacleField) Width() float64 {
	return f.cfg.Width
}
