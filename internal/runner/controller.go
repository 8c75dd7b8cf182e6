// Package runner implements the endless runner's game loop: the phase
// machine, jump physics, obstacle generation with difficulty scaling,
// collision tolerances and scoring. It is single-threaded and driven by an
// external scheduler calling OnTick; it never starts goroutines.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash/internal/config"
	"github.com/vovakirdan/dash/internal/core"
)

// Phase describes whether the loop is actively simulating.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Options carries the collaborators injected into a Controller.
// Every field is optional.
type Options struct {
	Store    KeyValueStore // High score persistence; nil keeps it in memory
	Deferrer Deferrer      // Schedules the hit flash clear; nil leaves it set until the next start
	Listener Listener      // Receives run notifications
	Logger   *log.Logger   // Defaults to a discarding logger
	Rand     *rand.Rand    // Obstacle randomness; defaults to a time-seeded source
}

// Controller owns the game state and orchestrates one tick at a time.
type Controller struct {
	cfg    config.RunnerConfig
	logger *log.Logger

	physics    *Physics
	difficulty *Difficulty
	obstacles  *ObstacleManager
	collision  *CollisionDetector
	scoreboard *Scoreboard

	deferrer Deferrer
	listener Listener

	phase    Phase
	hidden   bool
	hit      bool
	hitTimer Handle

	lastTick    time.Duration
	hasBaseline bool

	runs    int           // Runs started since creation
	elapsed time.Duration // Scored play time of the current run
	jumps   int
	cleared int
}

// New creates a controller in the Idle phase and loads the high score.
func New(cfg config.RunnerConfig, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &Controller{
		cfg:        cfg,
		logger:     logger,
		physics:    NewPhysics(cfg.Physics),
		difficulty: NewDifficulty(cfg.Speed),
		obstacles:  NewObstacleManager(cfg.Obstacles, cfg.Stage, rng),
		collision:  NewCollisionDetector(cfg.Collision),
		scoreboard: NewScoreboard(opts.Store, cfg.Storage.HighScoreKey, logger),
		deferrer:   opts.Deferrer,
		listener:   opts.Listener,
	}
	c.scoreboard.Load()
	return c
}

// Start begins a new run. Ignored while a run is in progress.
func (c *Controller) Start() bool {
	if c.phase == PhasePlaying {
		return false
	}

	c.cancelHitTimer()
	c.hit = false
	c.physics.StopCrouch()
	c.scoreboard.Reset()
	c.obstacles.ResetAnimation(c.scoreboard.Score())
	c.difficulty.Reset()
	c.physics.Reset()

	c.phase = PhasePlaying
	c.hasBaseline = false
	c.runs++
	c.elapsed = 0
	c.jumps = 0
	c.cleared = 0

	c.logger.Debug("run started", "run", c.runs, "obstacle", c.obstacles.Obstacle().Label)
	c.emit(Event{Kind: EventRunStarted})
	return true
}

// End finishes the current run. Ignored unless a run is in progress.
func (c *Controller) End() bool {
	if c.phase != PhasePlaying {
		return false
	}

	c.phase = PhaseEnded
	c.physics.StopCrouch()
	c.physics.Reset()
	c.hasBaseline = false

	record := c.scoreboard.CommitHighScore()
	c.showHit()

	summary := &RunSummary{
		Score:     c.scoreboard.Score(),
		HighScore: c.scoreboard.HighScore(),
		NewRecord: record,
		Duration:  c.elapsed,
		Jumps:     c.jumps,
		Cleared:   c.cleared,
	}
	c.logger.Debug("run ended",
		"score", c.scoreboard.DisplayScore(),
		"high", summary.HighScore,
		"record", record,
		"duration", summary.Duration,
	)
	c.emit(Event{Kind: EventRunEnded, Summary: summary})
	return true
}

// Jump launches the runner. Only possible while playing and grounded;
// cancels an active crouch.
func (c *Controller) Jump() bool {
	if c.phase != PhasePlaying || c.physics.Jumping() {
		return false
	}
	if !c.physics.Launch() {
		return false
	}
	c.jumps++
	c.emit(Event{Kind: EventJumped})
	return true
}

// StartCrouch lowers the runner while playing and grounded.
func (c *Controller) StartCrouch() bool {
	if c.phase != PhasePlaying {
		return false
	}
	return c.physics.StartCrouch()
}

// StopCrouch stands the runner up. Always allowed while crouching.
func (c *Controller) StopCrouch() bool {
	return c.physics.StopCrouch()
}

// IsRunning reports whether a run is in progress.
func (c *Controller) IsRunning() bool {
	return c.phase == PhasePlaying
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// HandleBlur forces the crouch off when input focus is lost, since the
// release would never be delivered.
func (c *Controller) HandleBlur() {
	c.physics.StopCrouch()
}

// HandleVisibilityChange pauses progress while hidden. The first visible
// tick afterwards becomes a fresh baseline.
func (c *Controller) HandleVisibilityChange(hidden bool) {
	c.hidden = hidden
	if hidden {
		c.physics.StopCrouch()
	}
	c.hasBaseline = false
}

// Hidden reports whether the host is backgrounded.
func (c *Controller) Hidden() bool {
	return c.hidden
}

// OnTick advances the simulation to timestamp ts, which must come from a
// monotonic clock. The first tick of a run, and the first tick after being
// hidden, only record the baseline.
func (c *Controller) OnTick(ts time.Duration) {
	if c.phase != PhasePlaying {
		return
	}
	if c.hidden {
		c.hasBaseline = false
		return
	}
	if !c.hasBaseline {
		c.lastTick = ts
		c.hasBaseline = true
		return
	}

	delta := ts - c.lastTick
	c.lastTick = ts
	if delta <= 0 {
		return
	}

	dtMs := float64(delta) / float64(time.Millisecond)
	stepMs := dtMs
	if limit := c.cfg.Physics.MaxPhysicsStepMs; limit > 0 && stepMs > limit {
		stepMs = limit
	}

	c.physics.Update(stepMs)
	if c.obstacles.Advance(stepMs, c.difficulty.SpeedMs()) {
		if c.obstacles.CycleComplete(c.scoreboard.Score()) {
			c.cleared++
		}
	}
	c.difficulty.Update(dtMs)

	if c.collision.Collides(c.RunnerBox(), c.obstacles.Box(), c.obstacles.Variant(), c.physics.Crouching()) {
		c.End()
		return
	}

	if c.cfg.Scoring.MsPerPoint > 0 {
		c.scoreboard.Add(dtMs / c.cfg.Scoring.MsPerPoint)
	}
	c.elapsed += delta
}

// RunnerBox returns the runner's bounding box for its current pose.
func (c *Controller) RunnerBox() core.Box {
	body := c.cfg.Runner
	w, h := body.Width, body.Height
	if c.physics.Crouching() {
		w, h = body.CrouchWidth, body.CrouchHeight
	}
	bottom := c.cfg.Stage.Height - body.Bottom - c.physics.Height()
	return core.NewBox(body.X, bottom-h, w, h)
}

// Score returns the current continuous score.
func (c *Controller) Score() float64 {
	return c.scoreboard.Score()
}

// HighScore returns the best score.
func (c *Controller) HighScore() int {
	return c.scoreboard.HighScore()
}

// Config returns the tunables the controller was built with.
func (c *Controller) Config() config.RunnerConfig {
	return c.cfg
}

func (c *Controller) showHit() {
	c.cancelHitTimer()
	c.hit = true
	if c.deferrer == nil || c.cfg.Effects.HitFlashMs <= 0 {
		return
	}
	var handle Handle
	handle = c.deferrer.AfterFunc(time.Duration(c.cfg.Effects.HitFlashMs)*time.Millisecond, func() {
		if c.hitTimer != handle {
			return
		}
		c.hit = false
		c.hitTimer = nil
	})
	c.hitTimer = handle
}

func (c *Controller) cancelHitTimer() {
	if c.hitTimer == nil {
		return
	}
	c.hitTimer.Stop()
	c.hitTimer = nil
}

func (c *Controller) emit(e Event) {
	if c.listener != nil {
		c.listener.OnEvent(e)
	}
}
