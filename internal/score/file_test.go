package score

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/wordfall/internal/config"
)

func TestFileBackendMissing(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "none.yaml"))
	if _, err := b.LoadHighScores(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFileBackendRoundTripDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.yaml")
	b := NewFileBackend(path)

	if err := b.SaveHighScores(Table{config.LevelEasy: 20, config.LevelMedium: 0, config.LevelHard: 7}); err != nil {
		t.Fatalf("SaveHighScores failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "easy: 20\nhard: 7\nmedium: 0\n" {
		t.Errorf("unexpected document:\n%s", data)
	}

	table, err := b.LoadHighScores()
	if err != nil {
		t.Fatalf("LoadHighScores failed: %v", err)
	}
	if table[config.LevelEasy] != 20 || table[config.LevelHard] != 7 {
		t.Errorf("loaded table = %v", table)
	}
}

func TestFileBackendLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBackend(filepath.Join(dir, "highscore.yaml"))

	for i := 0; i < 3; i++ {
		if err := b.SaveHighScores(Table{config.LevelEasy: i}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the record, found %v", names)
	}
}

func TestFileBackendCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.yaml")
	if err := os.WriteFile(path, []byte("easy: [not a number\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileBackend(path).LoadHighScores()
	if err == nil {
		t.Fatal("corrupt document should fail to load")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Error("corrupt document must not look like a missing one")
	}
}

func TestFileBackendCorruptIsRepairedByKeeper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.yaml")
	if err := os.WriteFile(path, []byte("{{{"), 0o600); err != nil {
		t.Fatal(err)
	}

	k := NewKeeper(NewFileBackend(path), quietLogger())
	if k.Best(config.LevelEasy) != 0 {
		t.Error("corrupt record should reset to zeros")
	}

	table, err := NewFileBackend(path).LoadHighScores()
	if err != nil {
		t.Fatalf("record should be rewritten, load failed: %v", err)
	}
	if len(table) != 3 {
		t.Errorf("rewritten record = %v, expected all three levels", table)
	}
}
