// Package words supplies the vocabulary that falls down the play field.
package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// ErrEmptyVocabulary is returned when a word source yields no words.
var ErrEmptyVocabulary = errors.New("word list is empty")

//go:embed default.txt
var defaultList []byte

// Catalog picks random words from a fixed vocabulary.
type Catalog struct {
	words []string
	rng   *rand.Rand
}

// NewCatalog creates a catalog over words using rng for selection.
// Blank entries are dropped and duplicates collapsed.
func NewCatalog(words []string, rng *rand.Rand) (*Catalog, error) {
	seen := make(map[string]struct{}, len(words))
	vocab := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		vocab = append(vocab, w)
	}
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Catalog{words: vocab, rng: rng}, nil
}

// Words returns a copy of the vocabulary.
func (c *Catalog) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Len returns the vocabulary size.
func (c *Catalog) Len() int {
	return len(c.words)
}

// NextWord returns a uniformly random word not in exclude. When every word
// is excluded it falls back to any word, accepting a duplicate.
func (c *Catalog) NextWord(exclude map[string]struct{}) string {
	if len(exclude) == 0 {
		return c.words[c.rng.Intn(len(c.words))]
	}

	available := make([]string, 0, len(c.words))
	for _, w := range c.words {
		if _, skip := exclude[w]; !skip {
			available = append(available, w)
		}
	}
	if len(available) == 0 {
		return c.words[c.rng.Intn(len(c.words))]
	}
	return available[c.rng.Intn(len(available))]
}

// Default returns the built-in vocabulary.
func Default() []string {
	list, err := Read(bytes.NewReader(defaultList))
	if err != nil {
		// The embedded list is part of the binary; an empty one is a build defect.
		panic(fmt.Sprintf("words: embedded list: %v", err))
	}
	return list
}

// Load reads one word per line from the provided file path.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer file.Close()

	list, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return list, nil
}

// Read parses one word per line, skipping blank lines and # comments.
func Read(r io.Reader) ([]string, error) {
	var list []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmptyVocabulary
	}
	return list, nil
}

// Source returns the vocabulary at path, or the built-in list when path is
// empty.
func Source(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
