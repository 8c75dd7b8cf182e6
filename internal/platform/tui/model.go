package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dash/internal/app"
	"github.com/vovakirdan/dash/internal/core"
)

// Terminals only report key presses, never releases. A crouch is held
// while the key auto-repeats and released once repeats stop arriving.
const (
	crouchHold       = 550 * time.Millisecond // Covers the initial auto-repeat delay
	crouchRepeatHold = 150 * time.Millisecond
)

// statusTTL is how long a transient status message stays on screen.
const statusTTL = 3 * time.Second

// Model is the Bubble Tea model for one player's game.
type Model struct {
	session  *app.Session
	keys     *KeyMapper
	help     help.Model
	screen   *core.Screen
	clock    clock
	tickRate int
	canShare bool // False over SSH, where the clipboard is the server's

	now         time.Duration
	crouchUntil time.Duration // Zero when no key crouch is held
	status      string
	statusUntil time.Duration
	quitting    bool
}

// ModelOptions configures a Model.
type ModelOptions struct {
	Width, Height int
	TickRate      int
	CanShare      bool
}

// NewModel creates a Bubble Tea model driving the given session.
func NewModel(session *app.Session, opts ModelOptions) Model {
	h := help.New()
	h.Width = opts.Width

	return Model{
		session:  session,
		keys:     NewKeyMapper(),
		help:     h,
		screen:   core.NewScreen(opts.Width, max(opts.Height-1, 1)),
		clock:    newClock(),
		tickRate: opts.TickRate,
		canShare: opts.CanShare,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.tickRate), tea.SetWindowTitle("dash"))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		c := m.session.Controller()
		c.HandleBlur()
		c.HandleVisibilityChange(true)
		m.crouchUntil = 0
		return m, nil

	case tea.FocusMsg:
		m.session.Controller().HandleVisibilityChange(false)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	controls := m.session.Controls()
	c := m.session.Controller()

	switch action {
	case core.ActionJump, core.ActionStart:
		if c.Hidden() {
			c.HandleVisibilityChange(false)
		}
		controls.Press(action)

	case core.ActionCrouch:
		hold := crouchHold
		if m.crouchUntil != 0 {
			hold = crouchRepeatHold
		}
		if controls.Press(action) || c.View().Crouching {
			m.crouchUntil = m.now + hold
		}

	case core.ActionPause:
		if c.IsRunning() {
			c.HandleVisibilityChange(!c.Hidden())
			m.crouchUntil = 0
		}

	case core.ActionShare:
		m.share()
	}

	return m, nil
}

// handleMouse maps clicks onto the pointer controls: upper half jumps,
// lower half ducks until the button is released.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	controls := m.session.Controls()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			controls.PointerDown(float64(msg.Y), float64(m.screen.Height()))
		}
	case tea.MouseActionRelease:
		controls.PointerUp()
	}
	return m, nil
}

// handleTick advances the game to the tick's time.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.now = m.clock.since(t)

	if m.crouchUntil != 0 && m.now >= m.crouchUntil {
		m.session.Controls().Release(core.ActionCrouch)
		m.crouchUntil = 0
	}
	if m.status != "" && m.now >= m.statusUntil {
		m.status = ""
	}

	m.session.Tick(m.now)

	return m, tickCmd(m.tickRate)
}

func (m *Model) share() {
	text, ok := m.session.ShareText()
	switch {
	case !ok:
		m.setStatus("finish a run to share it")
	case !m.canShare:
		m.setStatus(text)
	default:
		if _, err := m.session.Share(); err != nil {
			m.setStatus(text + "  (clipboard unavailable)")
		} else {
			m.setStatus("copied: " + text)
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = m.now + statusTTL
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawStage(m.screen, m.session.View(), m.status)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys())))
	return b.String()
}

// Run starts the Bubble Tea program for a local session.
func Run(session *app.Session, opts ModelOptions) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
