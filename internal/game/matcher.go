package game

import (
	"slices"
	"strings"

	"github.com/vovakirdan/wordfall/internal/core"
)

// HandleInput applies one keystroke. The typed input always stays a prefix
// of some in-flight word: a keystroke that matches nothing discards the
// whole input. Among matching words the one with the smallest y becomes
// the active word, the earliest spawned winning ties. Typing a word out
// removes it, counts it and emits EventWordCompleted.
//
// Keystrokes are ignored before the session is active and after game over.
func (s *Session) HandleInput(k core.Keystroke) {
	if !s.active || s.gameOver {
		return
	}

	s.input = k.Apply(s.input)
	if s.input == "" {
		s.activeWord = nil
		return
	}

	target := s.matchTarget()
	if target == nil {
		s.input = ""
		s.activeWord = nil
		return
	}
	s.activeWord = target

	if s.input == target.Text {
		s.complete(target)
	}
}

// HandleString feeds each rune of text as a keystroke.
func (s *Session) HandleString(text string) {
	for _, k := range core.Keystrokes(text) {
		s.HandleInput(k)
	}
}

// matchTarget returns the matching word with the smallest y, or nil.
func (s *Session) matchTarget() *FallingWord {
	var best *FallingWord
	for _, w := range s.words {
		if !strings.HasPrefix(w.Text, s.input) {
			continue
		}
		if best == nil || w.Y < best.Y || (w.Y == best.Y && w.seq < best.seq) {
			best = w
		}
	}
	return best
}

// complete removes w by identity after the scan that found it.
func (s *Session) complete(w *FallingWord) {
	s.words = slices.DeleteFunc(s.words, func(x *FallingWord) bool {
		return x == w
	})
	s.wordsTyped++
	s.input = ""
	s.activeWord = nil
	s.events = append(s.events, Event{Kind: EventWordCompleted, Word: w.Text})
}
