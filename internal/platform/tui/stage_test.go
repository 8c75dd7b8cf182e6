package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dash/internal/app"
	"github.com/vovakirdan/dash/internal/config"
	"github.com/vovakirdan/dash/internal/core"
	"github.com/vovakirdan/dash/internal/runner"
)

func newTestSession() *app.Session {
	return app.NewSession(app.Options{
		Config: config.DefaultRunnerConfig(),
		Seed:   7,
		Copy:   func(string) error { return nil },
	})
}

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		n += strings.Count(s.Row(y), string(r))
	}
	return n
}

func TestDrawStageIdle(t *testing.T) {
	s := core.NewScreen(80, 24)
	DrawStage(s, newTestSession().View(), "")

	if !strings.Contains(s.Row(0), "HI 00000  00000") {
		t.Errorf("score line = %q", s.Row(0))
	}
	if !strings.Contains(s.Row(1), "[ Start ]") {
		t.Errorf("status line = %q, want the start button", s.Row(1))
	}
	if countRune(s, GroundChar) != 80 {
		t.Errorf("ground should span the width, got %d cells", countRune(s, GroundChar))
	}
	if countRune(s, RunnerChar) == 0 {
		t.Error("runner not drawn")
	}
}

func TestDrawStageCrouchAndObstacle(t *testing.T) {
	session := newTestSession()
	c := session.Controller()
	c.Start()
	c.StartCrouch()

	v := c.View()
	v.Obstacle = core.NewBox(360, 150, 32, 50)
	v.Variant = runner.VariantGround

	s := core.NewScreen(80, 24)
	DrawStage(s, v, "")

	if countRune(s, CrouchChar) == 0 || countRune(s, RunnerChar) != 0 {
		t.Error("crouching runner should use the crouch glyph")
	}
	if countRune(s, CactusChar) == 0 {
		t.Error("cactus not drawn")
	}
	if !strings.Contains(s.Row(1), "next: ") {
		t.Errorf("status line = %q, want the next obstacle", s.Row(1))
	}
}

func TestDrawStageHitIsRed(t *testing.T) {
	session := newTestSession()
	c := session.Controller()
	c.Start()
	c.End()

	s := core.NewScreen(80, 24)
	DrawStage(s, c.View(), "")

	found := false
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune == RunnerChar && cell.Color == core.ColorHit {
				found = true
			}
		}
	}
	if !found {
		t.Error("runner should flash red after a hit")
	}
	if !strings.Contains(s.Row(1), "[ Play Again ]") {
		t.Errorf("status line = %q, want play again", s.Row(1))
	}
}

func TestDrawStageTooSmall(t *testing.T) {
	s := core.NewScreen(10, 3)
	DrawStage(s, newTestSession().View(), "")
	if countRune(s, RunnerChar) != 0 {
		t.Error("nothing but the warning should be drawn")
	}
}

func TestDrawStageStatusOverride(t *testing.T) {
	s := core.NewScreen(80, 24)
	DrawStage(s, newTestSession().View(), "copied!")
	if !strings.HasPrefix(s.Row(1), "copied!") {
		t.Errorf("status line = %q", s.Row(1))
	}
}
