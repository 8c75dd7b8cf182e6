package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dash/internal/core"
	"github.com/vovakirdan/dash/internal/runner"
)

// Visual characters for rendering
const (
	RunnerChar    = '█'
	CrouchChar    = '▄'
	CactusChar    = '▓'
	BirdChar      = '▼'
	GroundChar    = '═'
	hudRows       = 2 // Score line and status line above the stage
	minStageWidth = 20
)

// DrawStage projects a game snapshot onto the screen: the HUD on top and
// the stage scaled to fill the remaining cells.
func DrawStage(s *core.Screen, v runner.View, status string) {
	s.Clear()
	w, h := s.Width(), s.Height()-hudRows
	if w < minStageWidth || h < 3 {
		s.DrawTextCentered(0, "terminal too small")
		return
	}

	drawHUD(s, v, status)

	sx := v.Stage.Width / float64(w)
	sy := v.Stage.Height / float64(h)

	// The ground sits just below the runner's feet at rest.
	groundPx := v.Runner.Bottom() - v.Offset
	groundY := hudRows + int(math.Ceil(groundPx/sy))
	s.DrawHLine(0, groundY, w, GroundChar, core.ColorGround)

	obstacle := toCells(v.Obstacle, sx, sy)
	if v.Variant == runner.VariantAerial {
		s.DrawRectColored(obstacle, BirdChar, core.ColorBird)
	} else {
		s.DrawRectColored(obstacle, CactusChar, core.ColorCactus)
	}

	glyph, color := RunnerChar, core.ColorRunner
	if v.Crouching {
		glyph = CrouchChar
	}
	if v.Hit {
		color = core.ColorHit
	}
	s.DrawRectColored(toCells(v.Runner, sx, sy), glyph, color)

	if v.Paused {
		s.DrawTextColored((w-len("PAUSED"))/2, hudRows+h/3, "PAUSED", core.ColorNotice)
	}
}

// toCells maps a stage box into screen cells below the HUD.
func toCells(b core.Box, sx, sy float64) core.Rect {
	r := b.Scale(sx, sy)
	r.Y += hudRows
	return r
}

func drawHUD(s *core.Screen, v runner.View, status string) {
	s.DrawTextColored(0, 0, "dash", core.ColorTitle)

	score := fmt.Sprintf("HI %05d  %05d", v.HighScore, v.Score)
	s.DrawTextColored(s.Width()-len(score), 0, score, core.ColorScore)

	line := status
	if line == "" {
		line = statusLine(v)
	}
	s.DrawTextColored(0, 1, line, core.ColorMuted)
}

// statusLine describes what the player can do next.
func statusLine(v runner.View) string {
	switch {
	case v.StartVisible:
		return fmt.Sprintf("[ %s ]  press enter or space", v.StartLabel)
	case v.Paused:
		return "paused - press p to resume"
	default:
		return "next: " + v.ObstacleLabel
	}
}
