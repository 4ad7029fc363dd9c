package tui

import (
	"io"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/game"
	"github.com/vovakirdan/wordfall/internal/score"
	"github.com/vovakirdan/wordfall/internal/storage"
	"github.com/vovakirdan/wordfall/internal/words"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// newTestSession builds a session over a one-word vocabulary so spawned
// words are predictable.
func newTestSession(t *testing.T, word string) (*game.Session, *stepClock) {
	t.Helper()
	quiet := log.New(io.Discard)

	catalog, err := words.NewCatalog([]string{word}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	keeper := score.NewKeeper(score.NewFileBackend(filepath.Join(t.TempDir(), "highscore.yaml")), quiet)
	clock := &stepClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

	s, err := game.NewSession(config.DefaultConfig(), catalog, keeper,
		game.WithClock(clock), game.WithSeed(1), game.WithLogger(quiet))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, clock
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
