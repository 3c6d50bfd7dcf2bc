// Package config provides YAML-based configuration loading for the flappy
// game: physics constants, obstacle geometry, actor placement, parallax and
// the logical-unit to terminal-cell scale.
package config

import "math"

// FlappyConfig contains all tunables of the game.
type FlappyConfig struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Actor     Actor     `yaml:"actor"`
	Parallax  Parallax  `yaml:"parallax"`
	Render    Render    `yaml:"render"`
}

// Physics defines the per-tick integration constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set by a flap (negative = up)
	TiltUpDeg   float64 `yaml:"tilt_up_deg"`  // Nose-up tilt while rising
	TiltRate    float64 `yaml:"tilt_rate"`    // Radians of nose-down rotation per falling tick
	TiltMaxDeg  float64 `yaml:"tilt_max_deg"` // Nose-down clamp
}

// TiltUp returns the nose-up tilt in radians.
func (p Physics) TiltUp() float64 {
	return p.TiltUpDeg * math.Pi / 180
}

// TiltMax returns the nose-down clamp in radians.
func (p Physics) TiltMax() float64 {
	return p.TiltMaxDeg * math.Pi / 180
}

// Obstacles defines pipe geometry and cadence.
type Obstacles struct {
	Speed         float64 `yaml:"speed"`          // Leftward movement per tick
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	GapHeight     float64 `yaml:"gap_height"`     // Vertical size of the passable gap
	MinSegment    float64 `yaml:"min_segment"`    // Minimum visible length of each pipe segment
	Width         float64 `yaml:"width"`          // Horizontal size of a pipe
}

// Actor defines the bird's placement and idle animation.
type Actor struct {
	X            float64 `yaml:"x"`             // Fixed horizontal position (center)
	RestY        float64 `yaml:"rest_y"`        // Vertical position on the title screen
	Radius       float64 `yaml:"radius"`        // Collision radius
	BobAmplitude float64 `yaml:"bob_amplitude"` // Idle bob half-height
	BobSpeed     float64 `yaml:"bob_speed"`     // Idle bob angular speed, radians per second
}

// Parallax defines the cosmetic background scroll.
type Parallax struct {
	Speed     float64 `yaml:"speed"`      // Leftward scroll per tick
	TileWidth float64 `yaml:"tile_width"` // Width of one background tile
}

// Render defines how logical units map onto terminal cells.
type Render struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}
