// Package score computes typing speed and keeps the best score per
// difficulty level.
package score

import "math"

// ComputeSpeed returns words per minute, floored. Zero or negative elapsed
// time yields 0.
func ComputeSpeed(wordsTyped int, elapsedSeconds float64) int {
	if elapsedSeconds <= 0 || wordsTyped <= 0 {
		return 0
	}
	return int(math.Floor(float64(wordsTyped) * 60 / elapsedSeconds))
}
