package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dash/internal/config"
	"github.com/vovakirdan/dash/internal/core"
)

// Variant is the obstacle category.
type Variant int

const (
	VariantGround Variant = iota // Sits on the ground, must be jumped
	VariantAerial                // Flies at head height, can be ducked
)

// String returns the variant name used in logs and config keys.
func (v Variant) String() string {
	switch v {
	case VariantGround:
		return "ground"
	case VariantAerial:
		return "aerial"
	default:
		return "unknown"
	}
}

// Obstacle is one generated obstacle. It is replaced, never mutated, when
// the manager picks the next one.
type Obstacle struct {
	Variant      Variant
	Label        string  // Accessible name, e.g. "Cactus"
	Width        float64 // px
	Height       float64 // px
	GroundOffset float64 // Distance of the bottom edge from the stage bottom
}

// Box returns the obstacle's bounding box with its left edge at x.
func (o Obstacle) Box(x, stageHeight float64) core.Box {
	top := stageHeight - o.GroundOffset - o.Height
	return core.NewBox(x, top, o.Width, o.Height)
}

// ObstacleManager owns the single live obstacle: its variant, geometry and
// horizontal position along the stage.
type ObstacleManager struct {
	cfg     config.ObstaclesConfig
	stage   config.StageConfig
	rng     *rand.Rand
	current Obstacle
	x       float64 // Left edge in stage pixels
}

// NewObstacleManager creates a manager with a ground obstacle parked at the
// stage's starting edge. Call Randomize or ResetAnimation to pick a variant.
func NewObstacleManager(cfg config.ObstaclesConfig, stage config.StageConfig, rng *rand.Rand) *ObstacleManager {
	om := &ObstacleManager{
		cfg:   cfg,
		stage: stage,
		rng:   rng,
	}
	om.current = om.build(VariantGround, float64(cfg.Ground.BottomMin))
	om.x = stage.Width
	return om
}

// AerialChance returns the probability of an aerial obstacle at the given
// score. It ramps linearly from the base to the max chance over RampScore
// points and stays at the max afterwards.
func (om *ObstacleManager) AerialChance(score float64) float64 {
	ramp := float64(om.cfg.RampScore)
	if ramp <= 0 {
		ramp = 1 // Prevent division by zero
	}
	normalized := core.ClampF(math.Floor(score)/ramp, 0, 1)
	if normalized == 1 {
		return om.cfg.AerialMaxChance
	}
	return om.cfg.AerialBaseChance + normalized*(om.cfg.AerialMaxChance-om.cfg.AerialBaseChance)
}

// ChooseVariant draws the next variant, biased toward aerial obstacles as
// the score grows.
func (om *ObstacleManager) ChooseVariant(score float64) Variant {
	if om.rng.Float64() < om.AerialChance(score) {
		return VariantAerial
	}
	return VariantGround
}

// Randomize replaces the current obstacle with a freshly drawn one and
// returns it. The position is left untouched.
func (om *ObstacleManager) Randomize(score float64) Obstacle {
	variant := om.ChooseVariant(score)
	vc := om.variantConfig(variant)
	offset := vc.BottomMin
	if vc.BottomMax > vc.BottomMin {
		offset = vc.BottomMin + om.rng.Intn(vc.BottomMax-vc.BottomMin+1)
	}
	om.current = om.build(variant, float64(offset))
	return om.current
}

// ResetAnimation draws a new obstacle and restarts its traversal from the
// stage's starting edge.
func (om *ObstacleManager) ResetAnimation(score float64) Obstacle {
	o := om.Randomize(score)
	om.x = om.stage.Width
	return o
}

// Advance moves the obstacle left by one tick of a traversal that takes
// periodMs to cross the stage. It returns true once the trailing edge has
// left the stage, which is the cycle-complete signal.
func (om *ObstacleManager) Advance(dtMs, periodMs float64) bool {
	if dtMs > 0 && periodMs > 0 {
		distance := om.stage.Width + om.current.Width
		om.x -= distance * dtMs / periodMs
	}
	return om.offStage()
}

// CycleComplete handles the end of a traversal cycle. The signal is ignored
// while any part of the obstacle is still on stage, so spurious signals can
// never skip a visible obstacle. Returns whether a new obstacle was drawn.
func (om *ObstacleManager) CycleComplete(score float64) bool {
	if !om.offStage() {
		return false
	}
	om.ResetAnimation(score)
	return true
}

// offStage reports whether the trailing edge has passed the stage's left edge.
func (om *ObstacleManager) offStage() bool {
	return om.x+om.current.Width <= 0
}

// Obstacle returns the live obstacle.
func (om *ObstacleManager) Obstacle() Obstacle {
	return om.current
}

// Variant returns the live obstacle's variant.
func (om *ObstacleManager) Variant() Variant {
	return om.current.Variant
}

// X returns the live obstacle's left edge.
func (om *ObstacleManager) X() float64 {
	return om.x
}

// Box returns the live obstacle's bounding box in stage pixels.
func (om *ObstacleManager) Box() core.Box {
	return om.current.Box(om.x, om.stage.Height)
}

func (om *ObstacleManager) variantConfig(v Variant) config.VariantConfig {
	if v == VariantAerial {
		return om.cfg.Aerial
	}
	return om.cfg.Ground
}

func (om *ObstacleManager) build(v Variant, offset float64) Obstacle {
	vc := om.variantConfig(v)
	return Obstacle{
		Variant:      v,
		Label:        vc.Label,
		Width:        vc.Width,
		Height:       vc.Height,
		GroundOffset: offset,
	}
}
