package runner

import (
	"github.com/vovakirdan/dash/internal/config"
	"github.com/vovakirdan/dash/internal/core"
)

// CollisionDetector tests the runner against the obstacle with tolerances
// for sprite padding. Boxes are in stage pixels with Y growing downward.
type CollisionDetector struct {
	cfg config.CollisionConfig
}

// NewCollisionDetector creates a detector with the given tolerances.
func NewCollisionDetector(cfg config.CollisionConfig) *CollisionDetector {
	return &CollisionDetector{cfg: cfg}
}

// Padding returns the vertical padding applied to the runner box for a variant.
// Aerial sprites have tighter hitboxes than ground ones.
func (d *CollisionDetector) Padding(v Variant) config.PaddingConfig {
	if v == VariantAerial {
		return d.cfg.Aerial
	}
	return d.cfg.Ground
}

// Overlaps reports whether the padded boxes overlap on both axes.
func (d *CollisionDetector) Overlaps(runner, obstacle core.Box, v Variant) bool {
	horizontal := runner.Right()-d.cfg.RunnerRightInset > obstacle.Left &&
		obstacle.Right() > runner.Left+d.cfg.RunnerLeftInset

	pad := d.Padding(v)
	vertical := runner.Bottom()-pad.Bottom > obstacle.Top &&
		runner.Top+pad.Top < obstacle.Bottom()

	return horizontal && vertical
}

// HasClearance reports whether a crouched runner's top is low enough to pass
// beneath the obstacle's bottom edge.
func (d *CollisionDetector) HasClearance(runner, obstacle core.Box) bool {
	return runner.Top+d.cfg.DuckClearance >= obstacle.Bottom()
}

// Collides reports whether the runner hits the obstacle this tick.
func (d *CollisionDetector) Collides(runner, obstacle core.Box, v Variant, crouching bool) bool {
	if !d.Overlaps(runner, obstacle, v) {
		return false
	}
	if v == VariantAerial && crouching && d.HasClearance(runner, obstacle) {
		return false
	}
	return true
}
