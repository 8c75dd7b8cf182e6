package window

import (
	"sync"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/dash/internal/audio"
)

// Sound plays cues through Ebiten's audio context. Each cue is rendered
// once and rewound on replay.
type Sound struct {
	mu      sync.Mutex
	players map[audio.Cue]*eaudio.Player
}

// NewSound renders every cue into a player. Ebiten allows a single audio
// context per process, so an existing one is reused.
func NewSound() *Sound {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(audio.SampleRate)
	}

	s := &Sound{players: make(map[audio.Cue]*eaudio.Player, len(audio.Cues))}
	for _, c := range audio.Cues {
		s.players[c] = ctx.NewPlayerFromBytes(c.PCM(ctx.SampleRate()))
	}
	return s
}

// Play restarts the cue from the beginning.
func (s *Sound) Play(c audio.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[c]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
