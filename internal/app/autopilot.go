package app

import (
	"time"

	"github.com/vovakirdan/dash/internal/runner"
)

// Autopilot plays the game from the presentation snapshot alone. It jumps
// ground obstacles and ducks low aerial ones a fixed lead time before they
// reach the runner.
type Autopilot struct {
	JumpLead   time.Duration // Time before overlap to launch a jump
	CrouchLead time.Duration // Time before overlap to start ducking
	RightInset float64       // Runner hitbox inset on the leading side
}

// NewAutopilot returns an autopilot tuned for the default geometry.
func NewAutopilot(rightInset float64) *Autopilot {
	return &Autopilot{
		JumpLead:   60 * time.Millisecond,
		CrouchLead: 120 * time.Millisecond,
		RightInset: rightInset,
	}
}

// Steer issues the commands for one frame.
func (a *Autopilot) Steer(c *runner.Controller) {
	v := c.View()
	if v.Phase != runner.PhasePlaying {
		return
	}

	obstacle, body := v.Obstacle, v.Runner
	if obstacle.Right() < body.Left {
		c.StopCrouch()
		return
	}

	// Obstacle speed in px/ms for the current traversal period.
	speed := (v.Stage.Width + obstacle.Width) / v.SpeedMs
	gap := obstacle.Left - (body.Right() - a.RightInset)
	eta := time.Duration(gap / speed * float64(time.Millisecond))

	switch v.Variant {
	case runner.VariantGround:
		if eta <= a.JumpLead {
			c.Jump()
		}
	case runner.VariantAerial:
		// Only birds flying below standing head height need a duck.
		if obstacle.Bottom() > body.Top && eta <= a.CrouchLead {
			c.StartCrouch()
		}
	}
}

// SimResult is the outcome of a headless run.
type SimResult struct {
	Summary  runner.RunSummary
	Ended    bool // False when the time limit stopped the run
	Frames   int
	Elapsed  time.Duration
	Seed     int64
	Obstacle string // Label of the obstacle that ended the run
}

// Simulate plays one run at a fixed frame rate until it ends or limit of
// game time passes.
func Simulate(s *Session, pilot *Autopilot, fps int, limit time.Duration) SimResult {
	if fps <= 0 {
		fps = 60
	}
	frame := time.Second / time.Duration(fps)

	c := s.Controller()
	c.Start()

	var now time.Duration
	frames := 0
	for c.IsRunning() && now <= limit {
		if pilot != nil {
			pilot.Steer(c)
		}
		s.Tick(now)
		now += frame
		frames++
	}

	result := SimResult{Frames: frames, Elapsed: now, Seed: s.Seed()}
	if c.IsRunning() {
		c.End()
	} else {
		result.Ended = true
		result.Obstacle = c.View().ObstacleLabel
	}
	result.Summary, _ = s.LastRun()
	return result
}
