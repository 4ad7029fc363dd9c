// Package storage provides SQLite-based persistence for finished runs and
// best scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/score"
)

// Store manages the SQLite database connection for run history and best
// scores.
type Store struct {
	db *sql.DB
}

// Run is one finished round.
type Run struct {
	ID         int64
	Level      config.Level
	WPM        int
	WordsTyped int
	Elapsed    time.Duration
	NewRecord  bool
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			wpm INTEGER NOT NULL,
			words INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			new_record INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level, wpm DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			level TEXT PRIMARY KEY,
			wpm INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveRun records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (level, wpm, words, elapsed_ms, new_record) VALUES (?, ?, ?, ?, ?)",
		string(run.Level), run.WPM, run.WordsTyped, run.Elapsed.Milliseconds(), run.NewRecord,
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

// TopRuns retrieves the N fastest runs for the given level.
// Results are ordered by WPM descending, earlier runs first on ties.
func (s *Store) TopRuns(level config.Level, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, wpm, words, elapsed_ms, new_record, created_at
		 FROM runs
		 WHERE level = ?
		 ORDER BY wpm DESC, id ASC
		 LIMIT ?`,
		string(level), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all levels.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level, wpm, words, elapsed_ms, new_record, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var (
			r         Run
			level     string
			elapsedMS int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &level, &r.WPM, &r.WordsTyped, &elapsedMS, &r.NewRecord, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Level = config.Level(level)
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
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

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(level config.Level) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level = ?", string(level))
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	Level      config.Level
	RunsCount  int
	BestWPM    int
	AvgWPM     float64
	TotalWords int64
	LastPlayed time.Time
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(level config.Level) (*LevelStats, error) {
	stats := &LevelStats{Level: level}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(wpm), 0), COALESCE(AVG(wpm), 0), COALESCE(SUM(words), 0)
		 FROM runs WHERE level = ?`,
		string(level),
	).Scan(&stats.RunsCount, &stats.BestWPM, &stats.AvgWPM, &stats.TotalWords)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE level = ? ORDER BY id DESC LIMIT 1`,
		string(level),
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// LoadHighScores implements score.Backend. An empty table reports
// fs.ErrNotExist so the keeper seeds it.
func (s *Store) LoadHighScores() (score.Table, error) {
	rows, err := s.db.Query("SELECT level, wpm FROM high_scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	table := make(score.Table)
	for rows.Next() {
		var level string
		var wpm int
		if err := rows.Scan(&level, &wpm); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		table[config.Level(level)] = wpm
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("storage: no high scores: %w", fs.ErrNotExist)
	}
	return table, nil
}

// SaveHighScores implements score.Backend. All levels are written in one
// transaction.
func (s *Store) SaveHighScores(table score.Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for level, wpm := range table {
		_, err := tx.Exec(
			`INSERT INTO high_scores (level, wpm, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(level) DO UPDATE SET wpm = excluded.wpm, updated_at = excluded.updated_at`,
			string(level), wpm,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save high score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit high scores: %w", err)
	}
	return nil
}

var _ score.Backend = (*Store)(nil)
