package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDirName is the per-user directory holding configs, scores and keys.
const HomeDirName = ".flappy"

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg := embeddedDefault()

	// An explicit path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{UserPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() != nil {
			continue
		}
		return candidate, nil
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// defaults if the embed is broken.
func embeddedDefault() FlappyConfig {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig()
	}
	return cfg
}

// UserPath returns a path inside ~/.flappy, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HomeDirName, filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate reports every setting that would make the simulation or the
// renderer misbehave. A viewport too small for the gap is not checked here:
// the simulation skips spawns in that case.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.FlapImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse))
	}
	if c.Physics.TiltMaxDeg < 0 {
		errs = append(errs, fmt.Errorf("physics.tilt_max_deg must not be negative, got %v", c.Physics.TiltMaxDeg))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval))
	}
	if c.Obstacles.Speed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.speed must be positive, got %v", c.Obstacles.Speed))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.width must be positive, got %v", c.Obstacles.Width))
	}
	if c.Obstacles.GapHeight <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.gap_height must be positive, got %v", c.Obstacles.GapHeight))
	}
	if c.Obstacles.MinSegment < 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_segment must not be negative, got %v", c.Obstacles.MinSegment))
	}
	if c.Actor.Radius <= 0 {
		errs = append(errs, fmt.Errorf("actor.radius must be positive, got %v", c.Actor.Radius))
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("render cell size must be positive, got %vx%v", c.Render.CellWidth, c.Render.CellHeight))
	}

	return errors.Join(errs...)
}
