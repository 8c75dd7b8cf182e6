package config

// ApplyPreset adjusts the speed ramp for a difficulty preset.
// Presets only move tunables; the rules of the game stay the same.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	base := DefaultRunnerConfig().Speed

	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialMs = base.InitialMs * 1.25
		cfg.Speed.Step = base.Step / 2
	case DifficultyNormal:
		cfg.Speed = base
	case DifficultyHard:
		cfg.Speed.InitialMs = base.InitialMs * 0.8
		cfg.Speed.MinMs = base.MinMs * 0.8
		cfg.Speed.Step = base.Step * 1.5
	case DifficultyFixed:
		cfg.Speed.Step = 0
	}

	if cfg.Speed.MinMs > cfg.Speed.InitialMs {
		cfg.Speed.MinMs = cfg.Speed.InitialMs
	}
}
