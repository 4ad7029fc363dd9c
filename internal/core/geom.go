// Package core provides fundamental types shared by the game core and the
// terminal platform. It has no dependency on Bubble Tea so the game logic
// stays pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Scale maps v from a [0, from) range onto [0, to) cells, clamped to the
// last cell.
func Scale(v, from float64, to int) int {
	if from <= 0 || to <= 0 {
		return 0
	}
	return Clamp(int(v/from*float64(to)), 0, to-1)
}
