package runner

import "time"

// EventKind identifies a notification emitted on a state transition.
type EventKind int

const (
	EventRunStarted EventKind = iota
	EventJumped
	EventRunEnded
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run-started"
	case EventJumped:
		return "jumped"
	case EventRunEnded:
		return "run-ended"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for audio and presentation.
// Summary is only set for EventRunEnded.
type Event struct {
	Kind    EventKind
	Summary *RunSummary
}

// RunSummary describes a finished run.
type RunSummary struct {
	Score     float64       // Final continuous score
	HighScore int           // Best score after committing this run
	NewRecord bool          // Whether this run set the best score
	Duration  time.Duration // Play time that accrued score
	Jumps     int
	Cleared   int // Obstacles that completed their traversal
}

// Listener receives notifications. Implementations must not block.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Listeners fans one notification out to several listeners in order.
// Nil entries are skipped.
type Listeners []Listener

// OnEvent forwards e to every listener.
func (ls Listeners) OnEvent(e Event) {
	for _, l := range ls {
		if l != nil {
			l.OnEvent(e)
		}
	}
}
