package runner

import (
	"testing"

	"github.com/vovakirdan/dash/internal/config"
	"github.com/vovakirdan/dash/internal/core"
)

func TestCollisionGround(t *testing.T) {
	d := NewCollisionDetector(config.DefaultRunnerConfig().Collision)
	// Standing runner: x 48, feet 40px above a 240px stage.
	runner := core.NewBox(48, 106, 88, 94)

	tests := []struct {
		name     string
		obstacle core.Box
		want     bool
	}{
		{"overlapping", core.NewBox(80, 150, 32, 50), true},
		{"within right inset", core.NewBox(118, 150, 32, 50), false},
		{"just inside right inset", core.NewBox(117, 150, 32, 50), true},
		{"within left inset", core.NewBox(32, 150, 32, 50), false},
		{"far right", core.NewBox(400, 150, 32, 50), false},
		{"within bottom padding", core.NewBox(80, 194, 32, 50), false},
		{"one px past bottom padding", core.NewBox(80, 193, 32, 50), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Collides(runner, tt.obstacle, VariantGround, false); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionJumpClearsGround(t *testing.T) {
	d := NewCollisionDetector(config.DefaultRunnerConfig().Collision)
	cactus := core.NewBox(80, 150, 32, 50)

	// Ground bottom padding is 6, so feet may dip 6px into the cactus top.
	airborne := core.NewBox(48, 106, 88, 94).Translate(0, -44)
	if d.Collides(airborne, cactus, VariantGround, false) {
		t.Error("runner lifted 44px should clear the cactus")
	}
	grazing := core.NewBox(48, 106, 88, 94).Translate(0, -43)
	if !d.Collides(grazing, cactus, VariantGround, false) {
		t.Error("runner lifted 43px should hit the cactus")
	}
}

func TestDuckingClearance(t *testing.T) {
	d := NewCollisionDetector(config.DefaultRunnerConfig().Collision)
	// Aerial obstacle whose bottom edge is at y = 150.
	bird := core.NewBox(80, 118, 48, 32)
	const bottom = 150.0

	tests := []struct {
		name      string
		top       float64
		crouching bool
		want      bool
	}{
		{"crouched at clearance limit", bottom - 12, true, false},
		{"crouched below limit", bottom - 6, true, false},
		{"crouched one px too high", bottom - 13, true, true},
		{"standing at clearance limit", bottom - 12, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := core.NewBox(48, tt.top, 104, 56)
			if !d.Overlaps(runner, bird, VariantAerial) {
				t.Fatal("test boxes should overlap")
			}
			if got := d.Collides(runner, bird, VariantAerial, tt.crouching); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDuckingIgnoredForGround(t *testing.T) {
	d := NewCollisionDetector(config.DefaultRunnerConfig().Collision)
	obstacle := core.NewBox(80, 150, 32, 50)
	runner := core.NewBox(48, 144, 104, 56)

	if !d.Overlaps(runner, obstacle, VariantGround) {
		t.Fatal("test boxes should overlap")
	}
	if !d.Collides(runner, obstacle, VariantGround, true) {
		t.Error("crouching never clears a ground obstacle")
	}
}
