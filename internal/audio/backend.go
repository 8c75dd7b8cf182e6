package audio

import (
	"io"
	"sync"
)

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Bell rings the terminal bell for selected cues. Terminals have a single
// tone, so by default only the collision is announced.
type Bell struct {
	mu   sync.Mutex
	w    io.Writer
	cues map[Cue]bool
}

// NewBell creates a bell writing to w. With no cues given it rings on CueHit.
func NewBell(w io.Writer, cues ...Cue) *Bell {
	if len(cues) == 0 {
		cues = []Cue{CueHit}
	}
	b := &Bell{w: w, cues: make(map[Cue]bool, len(cues))}
	for _, c := range cues {
		b.cues[c] = true
	}
	return b
}

// Play writes BEL for enabled cues. Write errors are ignored.
func (b *Bell) Play(c Cue) {
	if b.w == nil || !b.cues[c] {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}

// Multi plays each cue on every player.
type Multi []Player

// Play forwards c to every player.
func (m Multi) Play(c Cue) {
	for _, p := range m {
		if p != nil {
			p.Play(c)
		}
	}
}
