package score

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
)

// ErrWriteFailed wraps any failure to persist the high-score table.
var ErrWriteFailed = errors.New("score: cannot persist high scores")

// Table maps each difficulty to its best WPM.
type Table map[config.Level]int

// ZeroTable returns a table with every level at 0.
func ZeroTable() Table {
	t := make(Table, len(config.Levels()))
	for _, lvl := range config.Levels() {
		t[lvl] = 0
	}
	return t
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Backend persists the high-score table.
// LoadHighScores returns an error wrapping fs.ErrNotExist when no record
// exists yet.
type Backend interface {
	LoadHighScores() (Table, error)
	SaveHighScores(Table) error
}

// Keeper tracks the best score per difficulty. The in-memory table is
// authoritative; the backend is written on every new record.
type Keeper struct {
	mu      sync.Mutex
	table   Table
	backend Backend
	logger  *log.Logger
}

// NewKeeper loads the table from backend. A missing record is created with
// zeros. An unreadable record is logged, replaced with zeros and
// overwritten; it never fails the caller.
func NewKeeper(backend Backend, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	k := &Keeper{backend: backend, logger: logger}

	table, err := backend.LoadHighScores()
	switch {
	case err == nil:
		k.table = normalize(table)
		return k
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("no high score record, creating one")
	default:
		logger.Warn("high score record unreadable, resetting", "error", err)
	}

	k.table = ZeroTable()
	if err := backend.SaveHighScores(k.table.clone()); err != nil {
		logger.Warn("cannot write high score record", "error", err)
	}
	return k
}

// normalize fills missing levels with 0, clamps negatives and drops
// unknown keys.
func normalize(t Table) Table {
	out := ZeroTable()
	for lvl, v := range t {
		if !lvl.Valid() {
			continue
		}
		out[lvl] = max(v, 0)
	}
	return out
}

// Best returns the stored best for lvl.
func (k *Keeper) Best(lvl config.Level) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.table[lvl]
}

// Table returns a snapshot of all bests.
func (k *Keeper) Table() Table {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.table.clone()
}

// RecordIfBest stores speed for lvl if it strictly beats the current best
// and reports whether it did. A persistence failure still updates the
// in-memory best; the returned error wraps ErrWriteFailed.
func (k *Keeper) RecordIfBest(lvl config.Level, speed int) (bool, error) {
	if !lvl.Valid() {
		return false, fmt.Errorf("score: %w: %q", config.ErrInvalidDifficulty, string(lvl))
	}

	k.mu.Lock()
	if speed <= k.table[lvl] {
		k.mu.Unlock()
		return false, nil
	}
	k.table[lvl] = speed
	snapshot := k.table.clone()
	k.mu.Unlock()

	if err := k.backend.SaveHighScores(snapshot); err != nil {
		return true, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	k.logger.Info("new high score", "difficulty", lvl, "wpm", speed)
	return true, nil
}
