package runner

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/dash/internal/config"
)

// placeGround parks a ground obstacle with its left edge at x.
func placeGround(c *Controller, x float64) {
	c.obstacles.current = c.obstacles.build(VariantGround, 40)
	c.obstacles.x = x
}

func placeAerial(c *Controller, x, offset float64) {
	c.obstacles.current = c.obstacles.build(VariantAerial, offset)
	c.obstacles.x = x
}

func TestControllerDucksLowestBird(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	lowest := float64(cfg.Obstacles.Aerial.BottomMin)

	t.Run("crouched runner passes", func(t *testing.T) {
		c, _, events := newTestController(newMemStore())
		c.Start()
		if !c.StartCrouch() {
			t.Fatal("StartCrouch() should apply while grounded")
		}
		if h := c.RunnerBox().Height; h != cfg.Runner.CrouchHeight {
			t.Fatalf("crouched height = %v, want %v", h, cfg.Runner.CrouchHeight)
		}
		placeAerial(c, 80, lowest)

		c.OnTick(ms(1000))
		c.OnTick(ms(1016))
		c.OnTick(ms(1032))
		if !c.IsRunning() || countEvents(*events, EventRunEnded) != 0 {
			t.Errorf("crouched runner should duck a bird at offset %v", lowest)
		}
	})

	t.Run("standing runner is hit", func(t *testing.T) {
		c, _, events := newTestController(newMemStore())
		c.Start()
		placeAerial(c, 80, lowest)

		c.OnTick(ms(1000))
		c.OnTick(ms(1016))
		if c.IsRunning() || countEvents(*events, EventRunEnded) != 1 {
			t.Errorf("standing runner should hit a bird at offset %v", lowest)
		}
	})
}

func TestControllerEndToEnd(t *testing.T) {
	store := newMemStore()
	c, _, events := newTestController(store)

	if c.Phase() != PhaseIdle {
		t.Fatalf("initial phase = %v, want idle", c.Phase())
	}
	if !c.Start() {
		t.Fatal("Start() from idle should apply")
	}

	c.OnTick(ms(1000)) // baseline
	c.OnTick(ms(1016))
	c.OnTick(ms(1032))
	c.OnTick(ms(1048))

	if got := c.Score(); math.Abs(got-0.48) > 1e-9 {
		t.Fatalf("score after 3x16ms = %v, want 0.48", got)
	}
	if !c.IsRunning() {
		t.Fatal("no overlap yet, run should continue")
	}

	placeGround(c, 80)
	c.OnTick(ms(1064))

	if c.Phase() != PhaseEnded {
		t.Fatalf("phase after overlap = %v, want ended", c.Phase())
	}
	if n := countEvents(*events, EventRunEnded); n != 1 {
		t.Fatalf("run-ended events = %d, want 1", n)
	}

	score := c.Score()
	for i := 0; i < 10; i++ {
		c.OnTick(ms(1080 + 16*i))
	}
	if c.Score() != score {
		t.Error("ticks after the end must not change the score")
	}
	if n := countEvents(*events, EventRunEnded); n != 1 {
		t.Errorf("run-ended events after extra ticks = %d, want 1", n)
	}

	last := (*events)[len(*events)-1]
	if last.Summary == nil || last.Summary.Duration != ms(48) {
		t.Errorf("summary = %+v, want duration 48ms", last.Summary)
	}
}

func TestControllerHighScore(t *testing.T) {
	store := newMemStore()
	c, _, events := newTestController(store)

	c.Start()
	c.scoreboard.current = 42.7
	c.End()

	if c.HighScore() != 42 || store.data["dino-high-score"] != "42" {
		t.Fatalf("high = %d stored %q, want 42 / \"42\"", c.HighScore(), store.data["dino-high-score"])
	}
	if s := (*events)[len(*events)-1].Summary; s == nil || !s.NewRecord {
		t.Error("first run should be a record")
	}

	c.Start()
	if c.Score() != 0 {
		t.Errorf("score after start = %v, want 0", c.Score())
	}
	c.scoreboard.current = 30
	c.End()

	if c.HighScore() != 42 || store.sets != 1 {
		t.Errorf("high = %d after %d saves, want 42 after 1", c.HighScore(), store.sets)
	}

	// A new controller picks the persisted value up.
	again, _, _ := newTestController(store)
	if again.HighScore() != 42 {
		t.Errorf("reloaded high = %d, want 42", again.HighScore())
	}
}

func TestControllerCommandsGuardedByPhase(t *testing.T) {
	c, _, events := newTestController(newMemStore())

	if c.Jump() || c.StartCrouch() || c.End() {
		t.Error("commands other than Start should be ignored while idle")
	}

	c.Start()
	if c.Start() {
		t.Error("Start while playing should be ignored")
	}
	if !c.Jump() {
		t.Error("Jump while grounded should apply")
	}

	c.OnTick(0)
	c.OnTick(ms(16))
	h, v := c.physics.Height(), c.physics.Velocity()
	if c.Jump() {
		t.Error("Jump mid-air should be ignored")
	}
	if c.physics.Height() != h || c.physics.Velocity() != v {
		t.Error("ignored jump changed physics")
	}
	if c.StartCrouch() {
		t.Error("crouch mid-air should be ignored")
	}

	if n := countEvents(*events, EventJumped); n != 1 {
		t.Errorf("jumped events = %d, want 1", n)
	}
	if n := countEvents(*events, EventRunStarted); n != 1 {
		t.Errorf("run-started events = %d, want 1", n)
	}
}

func TestControllerCrouch(t *testing.T) {
	c, _, _ := newTestController(newMemStore())
	c.Start()

	if !c.StartCrouch() {
		t.Fatal("crouch while grounded should apply")
	}
	box := c.RunnerBox()
	if box.Width != 104 || box.Height != 56 || box.Bottom() != 200 {
		t.Errorf("crouched box = %+v, want 104x56 with bottom 200", box)
	}

	c.HandleBlur()
	if c.View().Crouching {
		t.Error("blur should force the crouch off")
	}

	c.StartCrouch()
	c.Jump()
	v := c.View()
	if v.Crouching || !v.Jumping {
		t.Errorf("jump should cancel crouch: crouching=%v jumping=%v", v.Crouching, v.Jumping)
	}
}

func TestControllerBackgrounding(t *testing.T) {
	c, _, _ := newTestController(newMemStore())
	c.Start()
	c.Jump()

	c.OnTick(0)
	c.OnTick(ms(16))
	score := c.Score()
	height := c.physics.Height()

	c.HandleVisibilityChange(true)
	if !c.View().Paused {
		t.Error("hidden run should report paused")
	}
	c.OnTick(ms(32))
	c.OnTick(ms(500))
	if c.Score() != score || c.physics.Height() != height {
		t.Fatal("ticks while hidden must not change score or physics")
	}

	c.HandleVisibilityChange(false)
	c.OnTick(ms(5000))
	if c.Score() != score || c.physics.Height() != height {
		t.Fatal("first visible tick must be a fresh baseline")
	}

	c.OnTick(ms(5016))
	if got := c.Score() - score; math.Abs(got-0.16) > 1e-9 {
		t.Errorf("score gained after resume = %v, want 0.16", got)
	}
}

func TestControllerClampsPhysicsStep(t *testing.T) {
	c, _, _ := newTestController(newMemStore())
	c.Start()
	c.Jump()

	c.OnTick(0)
	c.OnTick(5 * time.Second)

	// A 5s stall integrates only 120ms of physics: still airborne.
	if !c.physics.Jumping() || c.physics.Height() <= 0 {
		t.Errorf("runner should still be airborne, height=%v", c.physics.Height())
	}
	if got := c.Score(); math.Abs(got-50) > 1e-9 {
		t.Errorf("score = %v, want 50 from the unclamped delta", got)
	}
	if got := c.View().SpeedMs; math.Abs(got-3120) > 1e-9 {
		t.Errorf("speed = %v, want 3120", got)
	}
}

func TestControllerHitFlash(t *testing.T) {
	c, timers, _ := newTestController(newMemStore())
	c.Start()
	c.End()

	if !c.View().Hit {
		t.Fatal("hit flag should be set after a collision")
	}
	timers.Pump(ms(399))
	if !c.View().Hit {
		t.Error("hit flag cleared early")
	}
	timers.Pump(ms(400))
	if c.View().Hit {
		t.Error("hit flag should clear after 400ms")
	}

	// Restarting before the flash ends cancels it.
	c.Start()
	c.End()
	c.Start()
	if c.View().Hit {
		t.Error("start should clear the hit flag")
	}
	if timers.Len() != 0 {
		t.Errorf("pending timers = %d, want 0 after restart", timers.Len())
	}
	c.End()
	timers.Pump(ms(2000))
	if c.View().Hit {
		t.Error("hit flag should clear after the latest flash")
	}
}

func TestControllerSpeedResetsOnStart(t *testing.T) {
	c, _, _ := newTestController(newMemStore())
	c.Start()
	c.OnTick(0)
	for i := 1; i <= 100; i++ {
		c.OnTick(ms(100 * i))
		if !c.IsRunning() {
			break
		}
	}
	if c.View().SpeedMs >= 3200 {
		t.Fatal("speed should have ramped")
	}
	c.End()
	c.Start()
	if c.View().SpeedMs != 3200 {
		t.Errorf("speed after start = %v, want 3200", c.View().SpeedMs)
	}
}

func TestControllerStartLabel(t *testing.T) {
	c, _, _ := newTestController(newMemStore())

	v := c.View()
	if v.StartLabel != LabelStart || !v.StartVisible {
		t.Errorf("idle button = %q visible=%v", v.StartLabel, v.StartVisible)
	}
	c.Start()
	if c.View().StartVisible {
		t.Error("button should hide while playing")
	}
	c.End()
	v = c.View()
	if v.StartLabel != LabelPlayAgain || !v.StartVisible {
		t.Errorf("ended button = %q visible=%v", v.StartLabel, v.StartVisible)
	}
}

func TestControllerClearsObstacles(t *testing.T) {
	c, _, events := newTestController(newMemStore())
	c.Start()
	placeGround(c, 10) // already past the runner

	c.OnTick(0)
	c.OnTick(ms(100))
	if !c.IsRunning() {
		t.Fatal("obstacle behind the runner should not collide")
	}
	c.OnTick(ms(200))
	c.OnTick(ms(300))
	c.End()

	s := (*events)[len(*events)-1].Summary
	if s == nil || s.Cleared != 1 {
		t.Errorf("summary = %+v, want 1 cleared obstacle", s)
	}
}
