package core

import "time"

// RuntimeConfig contains the platform settings a session is started with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration is the fixed simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Viewport is the playfield size, in logical units, handed to the
// simulation on every tick. It may change between ticks when the terminal
// is resized.
type Viewport struct {
	Width  int
	Height int

	// TileWidth is the width of one background tile as drawn by the
	// renderer; the parallax offset wraps modulo this value.
	TileWidth float64
}
