package score

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileBackend keeps the table in a small YAML document:
//
//	easy: 42
//	medium: 0
//	hard: 0
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for the document at path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the document location.
func (b *FileBackend) Path() string {
	return b.path
}

// LoadHighScores reads the document. A missing file yields an error
// wrapping fs.ErrNotExist.
func (b *FileBackend) LoadHighScores() (Table, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("score: corrupt record %s: %w", b.path, err)
	}
	if table == nil {
		return nil, fmt.Errorf("score: empty record %s", b.path)
	}
	return table, nil
}

// SaveHighScores writes the document to a temporary file in the same
// directory and renames it over the old one, so a crash leaves either the
// old or the new record intact.
func (b *FileBackend) SaveHighScores(t Table) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("score: cannot create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("score: cannot encode record: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*.tmp")
	if err != nil {
		return fmt.Errorf("score: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("score: cannot write record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("score: cannot sync record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("score: cannot close record: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("score: cannot replace record: %w", err)
	}
	return nil
}

var _ Backend = (*FileBackend)(nil)
