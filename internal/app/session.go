// Package app assembles a playable session from the game core and its
// collaborators: persistence, run history, audio and the clipboard.
// Frontends (terminal, SSH, window) own one Session per player.
package app

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash/internal/audio"
	"github.com/vovakirdan/dash/internal/config"
	"github.com/vovakirdan/dash/internal/runner"
	"github.com/vovakirdan/dash/internal/storage"
)

// RunHistory records finished runs.
type RunHistory interface {
	SaveRun(storage.RunRecord) (int64, error)
}

// Options configures a Session. Only Config is required.
type Options struct {
	Config  config.RunnerConfig
	Store   runner.KeyValueStore // Best score; defaults to memory
	History RunHistory           // Optional run log
	Player  audio.Player         // Optional sound output
	Logger  *log.Logger
	Seed    int64              // 0 picks a time-based seed
	Name    string             // Player name stored with each run
	Copy    func(string) error // Clipboard writer; defaults to clipboard.WriteAll
}

// Session is one player's game: a controller, its timers and the
// collaborators listening to it. It is not safe for concurrent use; the
// frontend drives it from a single goroutine.
type Session struct {
	controller *runner.Controller
	controls   *runner.Controls
	timers     *runner.TimerQueue
	logger     *log.Logger
	copy       func(string) error
	seed       int64

	last *runner.RunSummary
}

// NewSession wires a controller with the given collaborators.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemory()
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	s := &Session{
		timers: runner.NewTimerQueue(),
		logger: logger,
		copy:   copyFn,
		seed:   seed,
	}

	listeners := runner.Listeners{
		runner.ListenerFunc(s.remember),
		audio.NewSink(opts.Player),
	}
	if opts.History != nil {
		listeners = append(listeners, NewRecorder(opts.History, opts.Name, logger))
	}

	s.controller = runner.New(opts.Config, runner.Options{
		Store:    store,
		Deferrer: s.timers,
		Listener: listeners,
		Logger:   logger,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	s.controls = runner.NewControls(s.controller)
	return s
}

// Controller returns the game controller.
func (s *Session) Controller() *runner.Controller {
	return s.controller
}

// Controls returns the input mapping bound to the controller.
func (s *Session) Controls() *runner.Controls {
	return s.controls
}

// Seed returns the obstacle seed in use.
func (s *Session) Seed() int64 {
	return s.seed
}

// Tick runs due timers and advances the game to now. now must come from a
// monotonic clock shared by every Tick call of this session.
func (s *Session) Tick(now time.Duration) {
	s.timers.Pump(now)
	s.controller.OnTick(now)
}

// View returns the current presentation snapshot.
func (s *Session) View() runner.View {
	return s.controller.View()
}

// LastRun returns the summary of the most recent finished run, if any.
func (s *Session) LastRun() (runner.RunSummary, bool) {
	if s.last == nil {
		return runner.RunSummary{}, false
	}
	return *s.last, true
}

// ShareText returns the brag line for the last run.
func (s *Session) ShareText() (string, bool) {
	last, ok := s.LastRun()
	if !ok {
		return "", false
	}
	return FormatShare(last), true
}

// Share copies the brag line for the last run to the clipboard.
func (s *Session) Share() (string, error) {
	text, ok := s.ShareText()
	if !ok {
		return "", fmt.Errorf("app: nothing to share yet")
	}
	if err := s.copy(text); err != nil {
		s.logger.Warn("clipboard copy failed", "error", err)
		return text, fmt.Errorf("app: cannot copy to clipboard: %w", err)
	}
	return text, nil
}

func (s *Session) remember(e runner.Event) {
	if e.Kind == runner.EventRunEnded && e.Summary != nil {
		summary := *e.Summary
		s.last = &summary
	}
}

// FormatShare renders a run summary as a one-line brag.
func FormatShare(r runner.RunSummary) string {
	return fmt.Sprintf("dash: scored %d (best %d)", int(r.Score), r.HighScore)
}
