// Package window runs a session in a desktop window using Ebiten. Unlike a
// terminal it sees key releases, so crouching ends exactly when the key
// comes up.
package window

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/dash/internal/core"
	"github.com/vovakirdan/dash/internal/runner"
)

// hudHeight is the strip above the stage holding the score and status.
const hudHeight = 32

// Palette
var (
	colorBackground = color.NRGBA{247, 247, 247, 255}
	colorHUD        = color.NRGBA{32, 33, 36, 255}
	colorMuted      = color.NRGBA{117, 117, 117, 255}
	colorGround     = color.NRGBA{83, 83, 83, 255}
	colorRunner     = color.NRGBA{60, 64, 67, 255}
	colorHit        = color.NRGBA{217, 48, 37, 255}
	colorCactus     = color.NRGBA{52, 168, 83, 255}
	colorBird       = color.NRGBA{251, 188, 4, 255}
	colorOverlay    = color.NRGBA{0, 0, 0, 96}
	colorButton     = color.NRGBA{26, 115, 232, 255}
)

// Sprite is a filled rectangle in window coordinates.
type Sprite struct {
	X, Y, W, H float32
	Color      color.Color
}

// Scene is everything drawn for one frame, computed without touching the
// graphics backend.
type Scene struct {
	Width, Height int
	Sprites       []Sprite
	Score         string
	Status        string
	Button        *Sprite // Start button, when visible
	ButtonLabel   string
	Paused        bool
}

// LogicalSize returns the window's logical size for a stage.
func LogicalSize(stage core.Box) (int, int) {
	return int(stage.Width), int(stage.Height) + hudHeight
}

// BuildScene lays out a snapshot. Stage pixels map 1:1 onto the window,
// shifted down by the HUD.
func BuildScene(v runner.View, status string) Scene {
	w, h := LogicalSize(v.Stage)
	sc := Scene{
		Width:  w,
		Height: h,
		Score:  fmt.Sprintf("HI %05d  %05d", v.HighScore, v.Score),
		Status: status,
		Paused: v.Paused,
	}
	if sc.Status == "" {
		sc.Status = statusLine(v)
	}

	groundY := hudHeight + v.Runner.Bottom() - v.Offset
	sc.Sprites = append(sc.Sprites, Sprite{
		X: 0, Y: float32(groundY), W: float32(v.Stage.Width), H: 2,
		Color: colorGround,
	})

	obstacleColor := color.Color(colorCactus)
	if v.Variant == runner.VariantAerial {
		obstacleColor = colorBird
	}
	sc.Sprites = append(sc.Sprites, sprite(v.Obstacle, obstacleColor))

	runnerColor := color.Color(colorRunner)
	if v.Hit {
		runnerColor = colorHit
	}
	sc.Sprites = append(sc.Sprites, sprite(v.Runner, runnerColor))

	if v.StartVisible {
		bw, bh := float32(140), float32(36)
		sc.Button = &Sprite{
			X: (float32(w) - bw) / 2, Y: hudHeight + (float32(v.Stage.Height)-bh)/3,
			W: bw, H: bh, Color: colorButton,
		}
		sc.ButtonLabel = v.StartLabel
	}
	return sc
}

func sprite(b core.Box, c color.Color) Sprite {
	return Sprite{
		X: float32(b.Left), Y: float32(b.Top + hudHeight),
		W: float32(b.Width), H: float32(b.Height),
		Color: c,
	}
}

func statusLine(v runner.View) string {
	switch {
	case v.StartVisible:
		return "space or click to run"
	case v.Paused:
		return "paused"
	default:
		return "next: " + v.ObstacleLabel
	}
}

// StageY converts a window y coordinate into the stage's, or reports false
// when it falls on the HUD.
func StageY(y int) (float64, bool) {
	if y < hudHeight {
		return 0, false
	}
	return float64(y - hudHeight), true
}
