package app

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash/internal/runner"
	"github.com/vovakirdan/dash/internal/storage"
)

// BestScoreStore guards a shared key/value store so that concurrent
// sessions only ever raise a stored score. A session that loaded an older
// best cannot overwrite a higher one written since.
type BestScoreStore struct {
	mu    sync.Mutex
	inner runner.KeyValueStore
}

// NewBestScoreStore wraps inner.
func NewBestScoreStore(inner runner.KeyValueStore) *BestScoreStore {
	return &BestScoreStore{inner: inner}
}

// Get reads through to the wrapped store.
func (b *BestScoreStore) Get(key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inner.Get(key)
}

// Set writes value unless the stored value is a higher number.
func (b *BestScoreStore) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return b.inner.Set(key, value)
	}
	if current, ok, err := b.inner.Get(key); err == nil && ok {
		if prev, err := strconv.Atoi(strings.TrimSpace(current)); err == nil && prev >= next {
			return nil
		}
	}
	return b.inner.Set(key, value)
}

// Backend is the persistence a frontend runs with.
type Backend struct {
	Store   runner.KeyValueStore
	History RunHistory // nil without a database
	DB      *storage.Store
}

// Close releases the database, if any.
func (b *Backend) Close() error {
	if b.DB != nil {
		return b.DB.Close()
	}
	return nil
}

// OpenBackend opens the SQLite database at path. When it cannot be opened
// the game still runs: the best score lives in memory and runs are not
// recorded.
func OpenBackend(path string, logger *log.Logger) *Backend {
	db, err := storage.Open(path)
	if err != nil {
		logger.Warn("database unavailable, scores will not persist", "path", path, "error", err)
		return &Backend{Store: NewBestScoreStore(storage.NewMemory())}
	}
	return &Backend{
		Store:   NewBestScoreStore(db),
		History: db,
		DB:      db,
	}
}
