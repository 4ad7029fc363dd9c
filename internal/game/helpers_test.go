package game

import (
	"io"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/score"
	"github.com/vovakirdan/wordfall/internal/words"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type testEnv struct {
	session *Session
	clock   *fakeClock
	keeper  *score.Keeper
}

func newTestEnv(t *testing.T, vocab ...string) *testEnv {
	t.Helper()
	if len(vocab) == 0 {
		vocab = []string{"cat", "car", "dog", "bird", "fish", "horse"}
	}

	catalog, err := words.NewCatalog(vocab, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	quiet := log.New(io.Discard)
	keeper := score.NewKeeper(score.NewFileBackend(filepath.Join(t.TempDir(), "highscore.yaml")), quiet)
	clock := newFakeClock()

	s, err := NewSession(config.DefaultConfig(), catalog, keeper,
		WithClock(clock), WithSeed(1), WithLogger(quiet))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return &testEnv{session: s, clock: clock, keeper: keeper}
}

// addWord places a word directly into the live set.
func addWord(s *Session, text string, y float64) *FallingWord {
	s.nextSeq++
	w := &FallingWord{Text: text, X: 40, Y: y, seq: s.nextSeq}
	s.words = append(s.words, w)
	return w
}

func texts(s *Session) []string {
	out := make([]string, 0, len(s.words))
	for _, w := range s.words {
		out = append(out, w.Text)
	}
	return out
}
