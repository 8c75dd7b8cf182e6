package runner

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// KeyValueStore is the persistence contract for the best score.
// Get reports ok=false when the key is absent. Either call may fail; the
// scoreboard treats failures as "no high score" and "save skipped".
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Scoreboard tracks the current run's score and the persisted best score.
// The current score is continuous; only displays floor it.
type Scoreboard struct {
	store   KeyValueStore
	key     string
	logger  *log.Logger
	current float64
	high    int
}

// NewScoreboard creates a scoreboard persisting under key. store may be nil.
func NewScoreboard(store KeyValueStore, key string, logger *log.Logger) *Scoreboard {
	return &Scoreboard{
		store:  store,
		key:    key,
		logger: logger,
	}
}

// Load reads the best score from storage and zeroes the current score.
func (s *Scoreboard) Load() {
	s.high = s.loadHighScore()
	s.current = 0
}

// Score returns the current score.
func (s *Scoreboard) Score() float64 {
	return s.current
}

// DisplayScore returns the current score as shown to the player.
func (s *Scoreboard) DisplayScore() int {
	return int(math.Floor(s.current))
}

// HighScore returns the best score.
func (s *Scoreboard) HighScore() int {
	return s.high
}

// Add accrues points. Negative deltas are ignored.
func (s *Scoreboard) Add(delta float64) {
	if delta <= 0 || math.IsNaN(delta) {
		return
	}
	s.current += delta
}

// Reset zeroes the current score.
func (s *Scoreboard) Reset() {
	s.current = 0
}

// CommitHighScore promotes the floored current score to the best score when
// it beats it, persisting the new value. Returns whether it was a record.
func (s *Scoreboard) CommitHighScore() bool {
	floored := s.DisplayScore()
	if floored <= s.high {
		return false
	}
	s.high = floored
	s.persistHighScore(floored)
	return true
}

func (s *Scoreboard) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	stored, ok, err := s.store.Get(s.key)
	if err != nil {
		s.logger.Warn("unable to load high score", "key", s.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	high, err := parseScore(stored)
	if err != nil {
		s.logger.Warn("ignoring malformed high score", "key", s.key, "value", stored)
		return 0
	}
	return high
}

func (s *Scoreboard) persistHighScore(value int) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(s.key, strconv.Itoa(value)); err != nil {
		s.logger.Warn("unable to save high score", "key", s.key, "error", err)
	}
}

// parseScore accepts integers and tolerates a fractional tail ("42.9" -> 42).
// Negative values clamp to 0.
func parseScore(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return max(n, 0), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return max(int(math.Floor(f)), 0), nil
}
