package game

import (
	"time"

	"github.com/vovakirdan/wordfall/internal/config"
)

// EventKind identifies a session side effect for the presentation layer.
type EventKind int

const (
	EventWordCompleted EventKind = iota + 1
	EventGameOver
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventWordCompleted:
		return "WordCompleted"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is emitted when a word is typed out or the round ends.
type Event struct {
	Kind   EventKind
	Word   string  // EventWordCompleted: the word that was cleared
	Result *Result // EventGameOver: final numbers
}

// Result summarizes a finished round.
type Result struct {
	Level      config.Level
	WPM        int
	WordsTyped int
	Elapsed    time.Duration
	Best       int   // Best for Level after this round
	NewRecord  bool  // WPM beat the previous best
	PersistErr error // Non-nil if the new best could not be saved
}
