package runner

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash/internal/config"
)

// memStore is an in-memory KeyValueStore with injectable failures.
type memStore struct {
	data    map[string]string
	getErr  error
	setErr  error
	sets    int
	lastSet string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.lastSet = value
	return nil
}

var errStorage = errors.New("storage unavailable")

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// newTestController builds a controller with deterministic randomness, an
// in-memory store and a manual timer queue.
func newTestController(store *memStore) (*Controller, *TimerQueue, *[]Event) {
	events := &[]Event{}
	timers := NewTimerQueue()
	c := New(config.DefaultRunnerConfig(), Options{
		Store:    store,
		Deferrer: timers,
		Listener: ListenerFunc(func(e Event) { *events = append(*events, e) }),
		Logger:   quietLogger(),
		Rand:     rand.New(rand.NewSource(1)),
	})
	return c, timers, events
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
