package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestCatalog(t *testing.T, list []string) *Catalog {
	t.Helper()
	c, err := NewCatalog(list, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return c
}

func TestNewCatalogRejectsEmpty(t *testing.T) {
	if _, err := NewCatalog([]string{"", "  "}, nil); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestNewCatalogDedupes(t *testing.T) {
	c := newTestCatalog(t, []string{"cat", "cat", " dog "})
	if c.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", c.Len())
	}
}

func TestNextWordHonorsExclusion(t *testing.T) {
	c := newTestCatalog(t, []string{"cat", "car", "dog"})
	exclude := map[string]struct{}{"cat": {}, "car": {}}

	for i := 0; i < 50; i++ {
		if got := c.NextWord(exclude); got != "dog" {
			t.Fatalf("NextWord() = %q, expected dog (only non-excluded word)", got)
		}
	}
}

func TestNextWordFallsBackWhenAllExcluded(t *testing.T) {
	c := newTestCatalog(t, []string{"cat", "dog"})
	exclude := map[string]struct{}{"cat": {}, "dog": {}}

	got := c.NextWord(exclude)
	if got != "cat" && got != "dog" {
		t.Errorf("NextWord() = %q, expected a vocabulary word", got)
	}
}

func TestNextWordCoversVocabulary(t *testing.T) {
	list := []string{"a", "b", "c", "d"}
	c := newTestCatalog(t, list)

	seen := make(map[string]bool)
	for i := 0; i < 400; i++ {
		seen[c.NextWord(nil)] = true
	}
	for _, w := range list {
		if !seen[w] {
			t.Errorf("word %q never picked in 400 draws", w)
		}
	}
}

func TestNextWordDeterministic(t *testing.T) {
	list := Default()
	a, _ := NewCatalog(list, rand.New(rand.NewSource(7)))
	b, _ := NewCatalog(list, rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		if wa, wb := a.NextWord(nil), b.NextWord(nil); wa != wb {
			t.Fatalf("draw %d differs: %q vs %q", i, wa, wb)
		}
	}
}

func TestDefaultList(t *testing.T) {
	list := Default()
	if len(list) < 20 {
		t.Fatalf("default list too small: %d", len(list))
	}
	for _, w := range list {
		if strings.ContainsAny(w, " \t") {
			t.Errorf("default word %q contains whitespace", w)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	content := "# animals\ncat\n\n  dog  \n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(list) != 2 || list[0] != "cat" || list[1] != "dog" {
		t.Errorf("Load() = %v, expected [cat dog]", list)
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("\n# nothing\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("empty list should fail with ErrEmptyVocabulary, got %v", err)
	}
}

func TestSource(t *testing.T) {
	list, err := Source("")
	if err != nil || len(list) == 0 {
		t.Fatalf("Source(\"\") = %v, %v", list, err)
	}
	if _, err := Source(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("missing file should be an error")
	}
}
