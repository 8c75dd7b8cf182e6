package runner

import (
	"math"

	"github.com/vovakirdan/dash/internal/config"
)

// Difficulty shortens the obstacle traversal period as play time goes by.
// The period only ever decreases during a run and never drops below the
// floor; Reset restores the initial period.
type Difficulty struct {
	initial float64
	min     float64
	step    float64 // ms removed per second of play
	speed   float64
}

// NewDifficulty creates a difficulty ramp at its initial period.
func NewDifficulty(cfg config.SpeedConfig) *Difficulty {
	d := &Difficulty{
		initial: cfg.InitialMs,
		min:     cfg.MinMs,
		step:    cfg.Step,
	}
	d.Reset()
	return d
}

// Reset restores the initial traversal period.
func (d *Difficulty) Reset() {
	d.speed = d.initial
}

// Update applies dtMs of elapsed play and returns the new period.
func (d *Difficulty) Update(dtMs float64) float64 {
	if dtMs <= 0 || d.speed <= d.min {
		return d.speed
	}
	d.speed = math.Max(d.min, d.speed-(dtMs/1000)*d.step)
	return d.speed
}

// SpeedMs returns the current traversal period in milliseconds.
func (d *Difficulty) SpeedMs() float64 {
	return d.speed
}

// AtFloor reports whether the ramp has reached its fastest period.
func (d *Difficulty) AtFloor() bool {
	return d.speed <= d.min
}
