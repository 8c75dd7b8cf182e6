// Package storage provides SQLite-based persistence for the best score and
// the run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store manages the SQLite database connection.
// It implements the game's key/value contract for the best score.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        int64
	Player    string // "local" or the SSH user
	Score     float64
	HighScore int  // Best score right after the run
	NewRecord bool // Whether the run set the best score
	Duration  time.Duration
	Jumps     int
	Cleared   int
	CreatedAt time.Time
}

// DisplayScore returns the score as the game shows it.
func (r RunRecord) DisplayScore() int {
	return int(r.Score)
}

// RunStats contains aggregated statistics over all runs.
type RunStats struct {
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalTime  time.Duration
	TotalJumps int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != MemoryPath {
		// Expand ~ to home directory
		if dbPath != "" && dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		// Create parent directories
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One connection serializes writers from concurrent SSH sessions and
	// keeps an in-memory database alive for the store's lifetime.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT 'local',
			score REAL NOT NULL,
			high_score INTEGER NOT NULL DEFAULT 0,
			new_record INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			jumps INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the value stored under key. ok is false when the key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	player := r.Player
	if player == "" {
		player = "local"
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (player, score, high_score, new_record, duration_ms, jumps, cleared)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		player, r.Score, r.HighScore, r.NewRecord, r.Duration.Milliseconds(), r.Jumps, r.Cleared,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	return s.queryRuns("ORDER BY created_at DESC, id DESC", limit)
}

// TopRuns retrieves the N best runs, highest score first.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	return s.queryRuns("ORDER BY score DESC, id ASC", limit)
}

func (s *Store) queryRuns(order string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, high_score, new_record, duration_ms, jumps, cleared, created_at
		 FROM runs `+order+`
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.HighScore, &r.NewRecord,
			&durationMs, &r.Jumps, &r.Cleared, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRunScore returns the highest floored score in the run history.
// Returns 0 if no runs exist.
func (s *Store) BestRunScore() (int, error) {
	var score sql.NullFloat64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Float64), nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	var best, avg float64
	var totalMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(duration_ms), 0), COALESCE(SUM(jumps), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &best, &avg, &totalMs, &stats.TotalJumps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.BestScore = int(best)
	stats.AvgScore = avg
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes the run history. The best score is kept.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
