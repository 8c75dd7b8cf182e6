package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
// It mirrors defaults/runner.yaml and is used when the embedded YAML cannot
// be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Stage: StageConfig{
			Width:  720,
			Height: 240,
		},
		Runner: RunnerBody{
			X:            48,
			Bottom:       40,
			Width:        88,
			Height:       94,
			CrouchWidth:  104,
			CrouchHeight: 56,
		},
		Physics: PhysicsConfig{
			Gravity:          4200,
			JumpVelocity:     1120,
			MaxPhysicsStepMs: 120,
		},
		Speed: SpeedConfig{
			InitialMs: 3200,
			MinMs:     1600,
			Step:      16,
		},
		Obstacles: ObstaclesConfig{
			AerialBaseChance: 0.2,
			AerialMaxChance:  0.7,
			RampScore:        500,
			Ground: VariantConfig{
				Label:     "Cactus",
				Width:     32,
				Height:    50,
				BottomMin: 40,
				BottomMax: 40,
			},
			Aerial: VariantConfig{
				Label:     "Pterodactyl",
				Width:     48,
				Height:    32,
				BottomMin: 110,
				BottomMax: 150,
			},
		},
		Collision: CollisionConfig{
			RunnerLeftInset:  16,
			RunnerRightInset: 18,
			Ground:           PaddingConfig{Top: 12, Bottom: 6},
			Aerial:           PaddingConfig{Top: 4, Bottom: 4},
			DuckClearance:    12,
		},
		Scoring: ScoringConfig{
			MsPerPoint: 100,
		},
		Effects: EffectsConfig{
			HitFlashMs: 400,
		},
		Storage: StorageConfig{
			HighScoreKey: "dino-high-score",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
