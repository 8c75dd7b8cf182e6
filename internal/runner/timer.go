package runner

import (
	"sort"
	"time"
)

// Handle is a cancellable deferred action.
type Handle interface {
	// Stop cancels the action. It reports false if the action already ran
	// or was already stopped.
	Stop() bool
}

// Deferrer schedules a function to run once after d.
type Deferrer interface {
	AfterFunc(d time.Duration, f func()) Handle
}

// TimerQueue is a cooperative Deferrer. Nothing runs on its own: the host
// calls Pump from its frame loop and due callbacks run on that goroutine.
// Time is whatever monotonic clock the host feeds to Pump.
type TimerQueue struct {
	now     time.Duration
	seq     uint64
	pending []*queuedTimer
}

type queuedTimer struct {
	q   *TimerQueue
	due time.Duration
	seq uint64
	f   func()
	// done is set when the timer fires or is stopped.
	done bool
}

// NewTimerQueue creates an empty queue whose clock starts at zero.
func NewTimerQueue() *TimerQueue {
	return &TimerQueue{}
}

// AfterFunc schedules f to run d after the most recently pumped time.
func (q *TimerQueue) AfterFunc(d time.Duration, f func()) Handle {
	q.seq++
	t := &queuedTimer{q: q, due: q.now + max(d, 0), seq: q.seq, f: f}
	q.pending = append(q.pending, t)
	return t
}

// Pump advances the queue clock to now and runs every callback that is due,
// in due order. Callbacks may schedule further timers; those run on a later
// Pump even when already due. Returns the number of callbacks run.
func (q *TimerQueue) Pump(now time.Duration) int {
	if now > q.now {
		q.now = now
	}

	var due, later []*queuedTimer
	for _, t := range q.pending {
		switch {
		case t.done:
		case t.due <= q.now:
			due = append(due, t)
		default:
			later = append(later, t)
		}
	}
	q.pending = later

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	ran := 0
	for _, t := range due {
		if t.done {
			continue // stopped by an earlier callback
		}
		t.done = true
		t.f()
		ran++
	}
	return ran
}

// Len returns the number of timers still waiting to fire.
func (q *TimerQueue) Len() int {
	n := 0
	for _, t := range q.pending {
		if !t.done {
			n++
		}
	}
	return n
}

// Now returns the last pumped time.
func (q *TimerQueue) Now() time.Duration {
	return q.now
}

func (t *queuedTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}
