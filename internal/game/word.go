// Package game implements the falling-words session: spawning, movement,
// keystroke matching, loss detection and final scoring. It has no terminal
// dependencies; a driver calls Update once per frame and HandleInput per
// keystroke, then reads state back for display.
package game

// FallingWord is an in-flight word. Positions are in field units with y
// growing downward.
type FallingWord struct {
	Text string
	X    float64
	Y    float64
	seq  uint64 // Spawn order, used as a stable tie-break
}

// Move advances the word downward by speed.
func (w *FallingWord) Move(speed float64) {
	w.Y += speed
}

// WordView is a read-only snapshot of an in-flight word for rendering.
type WordView struct {
	Text   string
	X      float64
	Y      float64
	Typed  int  // Runes of Text already typed; 0 unless Active
	Active bool // Whether this is the word being typed
}
