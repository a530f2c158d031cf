// Package storage provides SQLite-based persistence for scroll runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished scroller session.
type Run struct {
	ID        int64
	RunID     string
	SceneID   string
	Direction string
	Distance  float64
	Recycles  int
	Duration  time.Duration
	CreatedAt time.Time
}

// SceneStats contains aggregated statistics for a scene.
type SceneStats struct {
	SceneID       string
	Runs          int
	BestDistance  float64
	TotalDistance float64
	TotalRecycles int64
	LastPlayed    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			scene_id TEXT NOT NULL,
			direction TEXT NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			recycles INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene_id ON runs(scene_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(scene_id, distance DESC);
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

// SaveRun records a finished run. A missing RunID is generated.
// Returns the run ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.SceneID == "" {
		return "", errors.New("storage: run has no scene id")
	}
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, scene_id, direction, distance, recycles, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.SceneID, r.Direction, r.Distance, r.Recycles, r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.RunID, nil
}

// TopRuns retrieves the longest N runs for the given scene.
func (s *Store) TopRuns(sceneID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, scene_id, direction, distance, recycles, duration_ms, created_at
		 FROM runs
		 WHERE scene_id = ?
		 ORDER BY distance DESC, id ASC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.SceneID, &r.Direction, &r.Distance, &r.Recycles, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestDistance returns the longest distance scrolled in the given scene.
// Returns 0 if no runs exist.
func (s *Store) BestDistance(sceneID string) (float64, error) {
	var best sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(distance) FROM runs WHERE scene_id = ?",
		sceneID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best distance: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return best.Float64, nil
}

// RunCount returns the number of runs recorded for the scene.
func (s *Store) RunCount(sceneID string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE scene_id = ?", sceneID).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes all runs for the given scene.
func (s *Store) ClearRuns(sceneID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE scene_id = ?", sceneID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AllSceneStats retrieves statistics for every scene that has runs.
func (s *Store) AllSceneStats() (map[string]*SceneStats, error) {
	rows, err := s.db.Query(
		`SELECT scene_id, COUNT(*), MAX(distance), SUM(distance), SUM(recycles), MAX(created_at)
		 FROM runs
		 GROUP BY scene_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SceneStats)
	for rows.Next() {
		var st SceneStats
		var lastPlayed any
		if err := rows.Scan(&st.SceneID, &st.Runs, &st.BestDistance, &st.TotalDistance, &st.TotalRecycles, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.SceneID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both driver time values and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
