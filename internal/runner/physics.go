package runner

import (
	"math"

	"github.com/vovakirdan/dash/internal/config"
)

// Physics integrates the runner's vertical motion and tracks crouching.
// Height is measured upward from the ground line, so the sprite's visual
// offset is its negation.
type Physics struct {
	gravity   float64 // px/s², pulls height down
	impulse   float64 // px/s, launch velocity
	height    float64 // >= 0
	velocity  float64 // positive = rising
	jumping   bool
	crouching bool
}

// NewPhysics creates runner physics at rest.
func NewPhysics(cfg config.PhysicsConfig) *Physics {
	return &Physics{
		gravity: cfg.Gravity,
		impulse: cfg.JumpVelocity,
	}
}

// Launch starts a jump. It is ignored while already airborne.
// An active crouch is cancelled first.
func (p *Physics) Launch() bool {
	if p.jumping {
		return false
	}
	p.crouching = false
	p.jumping = true
	p.height = 0
	p.velocity = p.impulse
	return true
}

// Update advances the jump arc by dtMs milliseconds and reports whether the
// runner landed during this step.
func (p *Physics) Update(dtMs float64) bool {
	if !p.jumping && p.height == 0 {
		return false
	}
	if dtMs <= 0 {
		return false
	}

	dt := dtMs / 1000
	p.velocity -= p.gravity * dt
	p.height = math.Max(0, p.height+p.velocity*dt)

	if p.height == 0 {
		landed := p.jumping
		p.velocity = 0
		p.jumping = false
		return landed
	}
	return false
}

// StartCrouch lowers the runner. Not possible mid-jump.
func (p *Physics) StartCrouch() bool {
	if p.crouching || p.jumping {
		return false
	}
	p.crouching = true
	return true
}

// StopCrouch stands the runner back up.
func (p *Physics) StopCrouch() bool {
	if !p.crouching {
		return false
	}
	p.crouching = false
	return true
}

// Reset puts the jump state at rest. Crouching is left to the caller.
func (p *Physics) Reset() {
	p.height = 0
	p.velocity = 0
	p.jumping = false
}

// AtRest reports whether the runner stands on the ground without momentum.
func (p *Physics) AtRest() bool {
	return p.height == 0 && p.velocity == 0
}

// Height returns the current jump height in pixels.
func (p *Physics) Height() float64 { return p.height }

// Velocity returns the current vertical velocity in px/s.
func (p *Physics) Velocity() float64 { return p.velocity }

// Jumping reports whether a jump is in progress.
func (p *Physics) Jumping() bool { return p.jumping }

// Crouching reports whether the runner is crouched.
func (p *Physics) Crouching() bool { return p.crouching }

// Offset returns the sprite's vertical offset in stage pixels.
func (p *Physics) Offset() float64 {
	if p.height == 0 {
		return 0
	}
	return -p.height
}
