package audio

import (
	"time"

	"github.com/vovakirdan/dash/internal/runner"
)

// Cue names a sound effect.
type Cue int

const (
	CueStart Cue = iota
	CueJump
	CueHit
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueJump:
		return "jump"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Cues lists every cue in a stable order.
var Cues = []Cue{CueStart, CueJump, CueHit}

// Tones returns the notes that make up a cue.
func (c Cue) Tones() []Tone {
	switch c {
	case CueStart:
		return []Tone{
			{Frequency: 420, PitchEnd: 560, Duration: 180 * time.Millisecond, Waveform: Triangle, Volume: 0.35},
			{Frequency: 640, PitchEnd: 720, Duration: 160 * time.Millisecond, Waveform: Square, Volume: 0.22, Attack: 15 * time.Millisecond},
		}
	case CueJump:
		return []Tone{
			{Frequency: 740, PitchEnd: 920, Duration: 220 * time.Millisecond, Waveform: Square, Volume: 0.28},
		}
	case CueHit:
		return []Tone{
			{Frequency: 220, PitchEnd: 90, Duration: 300 * time.Millisecond, Waveform: Sawtooth, Volume: 0.32, Attack: 5 * time.Millisecond},
		}
	default:
		return nil
	}
}

// PCM renders the cue at sampleRate.
func (c Cue) PCM(sampleRate int) []byte {
	return Synthesize(sampleRate, c.Tones()...)
}

// CueFor maps a game notification onto its sound.
func CueFor(kind runner.EventKind) (Cue, bool) {
	switch kind {
	case runner.EventRunStarted:
		return CueStart, true
	case runner.EventJumped:
		return CueJump, true
	case runner.EventRunEnded:
		return CueHit, true
	default:
		return 0, false
	}
}

// Player plays cues. Implementations must return immediately.
type Player interface {
	Play(Cue)
}

// Sink adapts a Player into a game listener.
type Sink struct {
	player Player
}

// NewSink creates a listener that plays p's cue for each notification.
// A nil player is silent.
func NewSink(p Player) *Sink {
	return &Sink{player: p}
}

// OnEvent implements runner.Listener.
func (s *Sink) OnEvent(e runner.Event) {
	if s.player == nil {
		return
	}
	if cue, ok := CueFor(e.Kind); ok {
		s.player.Play(cue)
	}
}

var _ runner.Listener = (*Sink)(nil)
