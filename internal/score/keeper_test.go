package score

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// memBackend is an in-memory Backend with injectable failures.
type memBackend struct {
	table   Table
	loadErr error
	saveErr error
	saves   int
}

func (m *memBackend) LoadHighScores() (Table, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.table.clone(), nil
}

func (m *memBackend) SaveHighScores(t Table) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.table = t.clone()
	return nil
}

func TestKeeperRecordIfBest(t *testing.T) {
	backend := &memBackend{table: Table{config.LevelEasy: 20}}
	k := NewKeeper(backend, quietLogger())

	if k.Best(config.LevelEasy) != 20 {
		t.Fatalf("Best(easy) = %d, expected 20", k.Best(config.LevelEasy))
	}

	isNew, err := k.RecordIfBest(config.LevelEasy, 25)
	if err != nil {
		t.Fatalf("RecordIfBest failed: %v", err)
	}
	if !isNew {
		t.Error("25 over 20 should be a new record")
	}
	if backend.table[config.LevelEasy] != 25 {
		t.Errorf("persisted easy = %d, expected 25", backend.table[config.LevelEasy])
	}

	isNew, err = k.RecordIfBest(config.LevelEasy, 22)
	if err != nil {
		t.Fatalf("RecordIfBest failed: %v", err)
	}
	if isNew {
		t.Error("22 under 25 should not be a new record")
	}
	if k.Best(config.LevelEasy) != 25 {
		t.Errorf("Best(easy) = %d, expected 25", k.Best(config.LevelEasy))
	}

	// Equal is not a record.
	if isNew, _ := k.RecordIfBest(config.LevelEasy, 25); isNew {
		t.Error("tying the best should not be a new record")
	}
}

func TestKeeperLevelsAreIndependent(t *testing.T) {
	k := NewKeeper(&memBackend{table: ZeroTable()}, quietLogger())

	if _, err := k.RecordIfBest(config.LevelHard, 30); err != nil {
		t.Fatal(err)
	}
	if k.Best(config.LevelEasy) != 0 || k.Best(config.LevelMedium) != 0 {
		t.Error("recording hard should not touch other levels")
	}
	if k.Best(config.LevelHard) != 30 {
		t.Errorf("Best(hard) = %d, expected 30", k.Best(config.LevelHard))
	}
}

func TestKeeperCreatesMissingRecord(t *testing.T) {
	backend := &memBackend{loadErr: os.ErrNotExist}
	k := NewKeeper(backend, quietLogger())

	if backend.saves != 1 {
		t.Errorf("missing record should be written once, saves = %d", backend.saves)
	}
	for _, lvl := range config.Levels() {
		if k.Best(lvl) != 0 {
			t.Errorf("Best(%s) = %d, expected 0", lvl, k.Best(lvl))
		}
	}
}

func TestKeeperRecoversFromCorruptRecord(t *testing.T) {
	backend := &memBackend{loadErr: errors.New("garbage")}
	k := NewKeeper(backend, quietLogger())

	if backend.saves != 1 {
		t.Errorf("corrupt record should be overwritten, saves = %d", backend.saves)
	}
	if k.Best(config.LevelMedium) != 0 {
		t.Error("corrupt record should fall back to zeros")
	}
}

func TestKeeperWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	backend := &memBackend{table: ZeroTable()}
	k := NewKeeper(backend, quietLogger())
	backend.saveErr = errors.New("disk full")

	isNew, err := k.RecordIfBest(config.LevelMedium, 40)
	if !isNew {
		t.Error("record should still be reported as new")
	}
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("expected ErrWriteFailed, got %v", err)
	}
	if k.Best(config.LevelMedium) != 40 {
		t.Errorf("in-memory best = %d, expected 40", k.Best(config.LevelMedium))
	}
}

func TestKeeperNormalizesLoadedTable(t *testing.T) {
	backend := &memBackend{table: Table{config.LevelHard: -4, config.Level("insane"): 99}}
	k := NewKeeper(backend, quietLogger())

	table := k.Table()
	if len(table) != 3 {
		t.Errorf("table should have exactly 3 levels, got %v", table)
	}
	if table[config.LevelHard] != 0 {
		t.Errorf("negative best should clamp to 0, got %d", table[config.LevelHard])
	}
}

func TestKeeperRejectsUnknownLevel(t *testing.T) {
	k := NewKeeper(&memBackend{table: ZeroTable()}, quietLogger())
	if _, err := k.RecordIfBest(config.Level("Easy"), 10); !errors.Is(err, config.ErrInvalidDifficulty) {
		t.Errorf("expected ErrInvalidDifficulty, got %v", err)
	}
}

func TestKeeperWithFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.yaml")

	k := NewKeeper(NewFileBackend(path), quietLogger())
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("record should be created on first load: %v", err)
	}
	if _, err := k.RecordIfBest(config.LevelEasy, 33); err != nil {
		t.Fatal(err)
	}

	reloaded := NewKeeper(NewFileBackend(path), quietLogger())
	if reloaded.Best(config.LevelEasy) != 33 {
		t.Errorf("reloaded Best(easy) = %d, expected 33", reloaded.Best(config.LevelEasy))
	}
}
