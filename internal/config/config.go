// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains every tunable of the game.
type RunnerConfig struct {
	Stage     StageConfig     `yaml:"stage"`
	Runner    RunnerBody      `yaml:"runner"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Speed     SpeedConfig     `yaml:"speed"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Collision CollisionConfig `yaml:"collision"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Effects   EffectsConfig   `yaml:"effects"`
	Storage   StorageConfig   `yaml:"storage"`
}

// StageConfig defines the playfield in pixels.
type StageConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerBody defines the runner sprite geometry in pixels.
type RunnerBody struct {
	X            float64 `yaml:"x"`             // Left edge
	Bottom       float64 `yaml:"bottom"`        // Distance of the feet from the stage bottom
	Width        float64 `yaml:"width"`         // Standing width
	Height       float64 `yaml:"height"`        // Standing height
	CrouchWidth  float64 `yaml:"crouch_width"`  // Width while crouching
	CrouchHeight float64 `yaml:"crouch_height"` // Height while crouching
}

// PhysicsConfig defines the jump arc.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`             // px/s², downward
	JumpVelocity     float64 `yaml:"jump_velocity"`       // px/s, upward launch impulse
	MaxPhysicsStepMs float64 `yaml:"max_physics_step_ms"` // Clamp for physics deltas after a stall
}

// SpeedConfig defines the obstacle traversal period ramp.
type SpeedConfig struct {
	InitialMs float64 `yaml:"initial_ms"`
	MinMs     float64 `yaml:"min_ms"`
	Step      float64 `yaml:"step"` // Milliseconds removed per second of play
}

// ObstaclesConfig defines variant selection and geometry.
type ObstaclesConfig struct {
	AerialBaseChance float64       `yaml:"aerial_base_chance"`
	AerialMaxChance  float64       `yaml:"aerial_max_chance"`
	RampScore        int           `yaml:"ramp_score"` // Score at which the aerial chance peaks
	Ground           VariantConfig `yaml:"ground"`
	Aerial           VariantConfig `yaml:"aerial"`
}

// VariantConfig defines one obstacle variant.
type VariantConfig struct {
	Label     string  `yaml:"label"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BottomMin int     `yaml:"bottom_min"` // Inclusive offset range from the stage bottom
	BottomMax int     `yaml:"bottom_max"`
}

// CollisionConfig defines hitbox tolerances.
type CollisionConfig struct {
	RunnerLeftInset  float64       `yaml:"runner_left_inset"`
	RunnerRightInset float64       `yaml:"runner_right_inset"`
	Ground           PaddingConfig `yaml:"ground"`
	Aerial           PaddingConfig `yaml:"aerial"`
	DuckClearance    float64       `yaml:"duck_clearance"`
}

// PaddingConfig defines vertical padding applied to the runner box.
type PaddingConfig struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// ScoringConfig defines how time turns into points.
type ScoringConfig struct {
	MsPerPoint float64 `yaml:"ms_per_point"`
}

// EffectsConfig defines presentational timings.
type EffectsConfig struct {
	HitFlashMs int `yaml:"hit_flash_ms"`
}

// StorageConfig defines persistence keys.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// Unknown or empty values return "" which keeps the loaded config as is.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
