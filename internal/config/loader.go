package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "runner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.dash/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are layered over the built-in defaults, so a partial file only
// overrides the keys it sets.
func Load(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate rejects tunables the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Stage.Width <= 0 || c.Stage.Height <= 0 {
		errs = append(errs, errors.New("stage: width and height must be positive"))
	}
	if c.Runner.Width <= 0 || c.Runner.Height <= 0 || c.Runner.CrouchWidth <= 0 || c.Runner.CrouchHeight <= 0 {
		errs = append(errs, errors.New("runner: sizes must be positive"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics: gravity must be positive"))
	}
	if c.Physics.JumpVelocity <= 0 {
		errs = append(errs, errors.New("physics: jump_velocity must be positive"))
	}
	if c.Physics.MaxPhysicsStepMs <= 0 {
		errs = append(errs, errors.New("physics: max_physics_step_ms must be positive"))
	}
	if c.Speed.MinMs <= 0 || c.Speed.MinMs > c.Speed.InitialMs {
		errs = append(errs, fmt.Errorf("speed: need 0 < min_ms (%v) <= initial_ms (%v)", c.Speed.MinMs, c.Speed.InitialMs))
	}
	if c.Speed.Step < 0 {
		errs = append(errs, errors.New("speed: step must not be negative"))
	}
	if !inUnit(c.Obstacles.AerialBaseChance) || !inUnit(c.Obstacles.AerialMaxChance) ||
		c.Obstacles.AerialBaseChance > c.Obstacles.AerialMaxChance {
		errs = append(errs, errors.New("obstacles: need 0 <= aerial_base_chance <= aerial_max_chance <= 1"))
	}
	if c.Obstacles.RampScore <= 0 {
		errs = append(errs, errors.New("obstacles: ramp_score must be positive"))
	}
	for name, v := range map[string]VariantConfig{"ground": c.Obstacles.Ground, "aerial": c.Obstacles.Aerial} {
		if v.Width <= 0 || v.Height <= 0 {
			errs = append(errs, fmt.Errorf("obstacles.%s: sizes must be positive", name))
		}
		if v.BottomMin > v.BottomMax {
			errs = append(errs, fmt.Errorf("obstacles.%s: bottom_min %d > bottom_max %d", name, v.BottomMin, v.BottomMax))
		}
	}
	if c.Scoring.MsPerPoint <= 0 {
		errs = append(errs, errors.New("scoring: ms_per_point must be positive"))
	}
	if c.Storage.HighScoreKey == "" {
		errs = append(errs, errors.New("storage: high_score_key must not be empty"))
	}

	return errors.Join(errs...)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dash", "configs", filename)
}
