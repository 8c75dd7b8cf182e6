package app

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash/internal/runner"
	"github.com/vovakirdan/dash/internal/storage"
)

// Recorder writes every finished run to the run history.
type Recorder struct {
	history RunHistory
	player  string
	logger  *log.Logger
}

// NewRecorder creates a listener recording runs under the given player name.
func NewRecorder(history RunHistory, player string, logger *log.Logger) *Recorder {
	return &Recorder{history: history, player: player, logger: logger}
}

// OnEvent implements runner.Listener.
func (r *Recorder) OnEvent(e runner.Event) {
	if e.Kind != runner.EventRunEnded || e.Summary == nil {
		return
	}
	s := e.Summary
	_, err := r.history.SaveRun(storage.RunRecord{
		Player:    r.player,
		Score:     s.Score,
		HighScore: s.HighScore,
		NewRecord: s.NewRecord,
		Duration:  s.Duration,
		Jumps:     s.Jumps,
		Cleared:   s.Cleared,
	})
	if err != nil {
		r.logger.Warn("unable to record run", "error", err)
	}
}
