package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dash/internal/app"
	"github.com/vovakirdan/dash/internal/core"
)

const statusTTL = 3 * time.Second

// keyActions maps keyboard keys onto game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeySpace:     core.ActionJump,
	ebiten.KeyArrowUp:   core.ActionJump,
	ebiten.KeyW:         core.ActionJump,
	ebiten.KeyArrowDown: core.ActionCrouch,
	ebiten.KeyS:         core.ActionCrouch,
	ebiten.KeyEnter:     core.ActionStart,
	ebiten.KeyP:         core.ActionPause,
	ebiten.KeyEscape:    core.ActionPause,
	ebiten.KeyC:         core.ActionShare,
	ebiten.KeyQ:         core.ActionQuit,
}

// Options configures the window.
type Options struct {
	Scale  float64 // Initial window scale; defaults to 1
	TPS    int     // Updates per second; defaults to 60
	Logger *log.Logger
}

// Game implements ebiten.Game over one session.
type Game struct {
	session *app.Session
	logger  *log.Logger
	start   time.Time

	now         time.Duration
	focused     bool
	pointerDown bool
	touches     []ebiten.TouchID
	status      string
	statusUntil time.Duration
}

// NewGame creates a game driving session.
func NewGame(session *app.Session, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		session: session,
		logger:  logger,
		start:   time.Now(),
		focused: true,
	}
}

// Update polls input and advances the session.
func (g *Game) Update() error {
	g.now = time.Since(g.start)

	if err := g.handleFocus(); err != nil {
		return err
	}
	if err := g.handleKeys(); err != nil {
		return err
	}
	g.handlePointer()

	if g.status != "" && g.now >= g.statusUntil {
		g.status = ""
	}
	g.session.Tick(g.now)
	return nil
}

func (g *Game) handleFocus() error {
	focused := ebiten.IsFocused()
	if focused == g.focused {
		return nil
	}
	g.focused = focused
	g.logger.Debug("window focus changed", "focused", focused)
	c := g.session.Controller()
	if !focused {
		c.HandleBlur()
		c.HandleVisibilityChange(true)
		g.pointerDown = false
		return nil
	}
	c.HandleVisibilityChange(false)
	return nil
}

func (g *Game) handleKeys() error {
	controls := g.session.Controls()
	c := g.session.Controller()

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		action, ok := keyActions[k]
		if !ok {
			continue
		}
		switch action {
		case core.ActionQuit:
			return ebiten.Termination
		case core.ActionPause:
			if c.IsRunning() {
				c.HandleVisibilityChange(!c.Hidden())
			}
		case core.ActionShare:
			g.share()
		default:
			if c.Hidden() {
				c.HandleVisibilityChange(false)
			}
			controls.Press(action)
		}
	}

	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if keyActions[k] == core.ActionCrouch && !g.crouchHeld() {
			controls.Release(core.ActionCrouch)
		}
	}
	return nil
}

// crouchHeld reports whether any crouch key is still down.
func (g *Game) crouchHeld() bool {
	for k, a := range keyActions {
		if a == core.ActionCrouch && ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) handlePointer() {
	controls := g.session.Controls()
	height := g.session.View().Stage.Height

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		_, y := ebiten.CursorPosition()
		g.pointerDown = true
		sy, _ := StageY(y)
		controls.PointerDown(sy, height)
	}
	if g.pointerDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pointerDown = false
		controls.PointerUp()
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		_, y := ebiten.TouchPosition(id)
		sy, _ := StageY(y)
		controls.PointerDown(sy, height)
	}
	g.touches = inpututil.AppendJustReleasedTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		controls.PointerUp()
	}
}

func (g *Game) share() {
	line, err := g.session.Share()
	switch {
	case line == "":
		g.setStatus("finish a run to share it")
	case err != nil:
		g.setStatus(line + " (clipboard unavailable)")
	default:
		g.setStatus("copied: " + line)
	}
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusUntil = g.now + statusTTL
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := BuildScene(g.session.View(), g.status)

	screen.Fill(colorBackground)
	for _, s := range sc.Sprites {
		vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, s.Color, false)
	}

	face := basicfont.Face7x13
	text.Draw(screen, "dash", face, 8, 20, colorHUD)
	text.Draw(screen, sc.Score, face, sc.Width-8-len(sc.Score)*7, 20, colorHUD)
	text.Draw(screen, sc.Status, face, 64, 20, colorMuted)

	if sc.Paused {
		vector.DrawFilledRect(screen, 0, hudHeight, float32(sc.Width), float32(sc.Height-hudHeight), colorOverlay, false)
		label := "PAUSED"
		text.Draw(screen, label, face, (sc.Width-len(label)*7)/2, sc.Height/2, colorHUD)
	}

	if b := sc.Button; b != nil {
		vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, b.Color, false)
		x := int(b.X+b.W/2) - len(sc.ButtonLabel)*7/2
		y := int(b.Y+b.H/2) + 4
		text.Draw(screen, sc.ButtonLabel, face, x, y, colorBackground)
	}
}

// Layout keeps the logical size fixed and lets Ebiten scale it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return LogicalSize(g.session.View().Stage)
}

// Run opens the window and blocks until it is closed.
func Run(session *app.Session, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	g := NewGame(session, opts.Logger)
	w, h := LogicalSize(session.View().Stage)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle("dash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
