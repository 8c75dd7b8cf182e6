package runner

import "github.com/vovakirdan/dash/internal/core"

// Start button labels.
const (
	LabelStart     = "Start"
	LabelPlayAgain = "Play Again"
)

// View is a read-only snapshot of everything a presentation layer needs to
// draw one frame. All geometry is in stage pixels with Y growing downward.
type View struct {
	Phase     Phase
	Paused    bool // Playing, but backgrounded
	Hit       bool // Collision flash is showing
	Jumping   bool
	Crouching bool
	Offset    float64 // Runner vertical offset, <= 0 while airborne
	SpeedMs   float64 // Current obstacle traversal period

	Score     int // Floored current score
	HighScore int

	Stage         core.Box
	Runner        core.Box
	Obstacle      core.Box
	Variant       Variant
	ObstacleLabel string

	StartLabel   string
	StartVisible bool
}

// View returns the current presentation snapshot.
func (c *Controller) View() View {
	startLabel := LabelStart
	if c.runs > 0 {
		startLabel = LabelPlayAgain
	}
	obstacle := c.obstacles.Obstacle()

	return View{
		Phase:         c.phase,
		Paused:        c.phase == PhasePlaying && c.hidden,
		Hit:           c.hit,
		Jumping:       c.physics.Jumping(),
		Crouching:     c.physics.Crouching(),
		Offset:        c.physics.Offset(),
		SpeedMs:       c.difficulty.SpeedMs(),
		Score:         c.scoreboard.DisplayScore(),
		HighScore:     c.scoreboard.HighScore(),
		Stage:         core.NewBox(0, 0, c.cfg.Stage.Width, c.cfg.Stage.Height),
		Runner:        c.RunnerBox(),
		Obstacle:      c.obstacles.Box(),
		Variant:       obstacle.Variant,
		ObstacleLabel: obstacle.Label,
		StartLabel:    startLabel,
		StartVisible:  c.phase != PhasePlaying,
	}
}
