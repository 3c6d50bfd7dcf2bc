package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: Physics{
			Gravity:     0.25,
			FlapImpulse: -4.5,
			TiltUpDeg:   -25,
			TiltRate:    0.04,
			TiltMaxDeg:  90,
		},
		Obstacles: Obstacles{
			Speed:         2.5,
			SpawnInterval: 120,
			GapHeight:     170,
			MinSegment:    50,
			Width:         60,
		},
		Actor: Actor{
			X:            50,
			RestY:        150,
			Radius:       15,
			BobAmplitude: 5,
			BobSpeed:     1000.0 / 300.0,
		},
		Parallax: Parallax{
			Speed:     1,
			TileWidth: 400,
		},
		Render: Render{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
