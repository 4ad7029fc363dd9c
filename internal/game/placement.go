package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/wordfall/internal/config"
)

// Planner picks horizontal spawn positions that keep new words clear of
// the ones already falling.
type Planner struct {
	rng *rand.Rand
}

// NewPlanner creates a planner drawing candidates from rng.
func NewPlanner(rng *rand.Rand) *Planner {
	return &Planner{rng: rng}
}

// PlanX returns an x position for text. Up to field.PlacementAttempts random
// candidates in [LeftMargin, Width-RightMargin-wordWidth] are tried; a
// candidate is rejected if it lies closer than wordWidth+MinGap to any
// existing word's x. When every attempt is rejected it returns the left
// margin and ok=false, which may overlap.
func (p *Planner) PlanX(text string, existing []*FallingWord, field config.Field) (x float64, ok bool) {
	width := field.WordWidth(text)
	lo := int(math.Ceil(field.LeftMargin))
	hi := int(math.Floor(field.Width - field.RightMargin - width))
	if hi < lo {
		return field.LeftMargin, false
	}

	minDist := width + field.MinGap
	for attempt := 0; attempt < field.PlacementAttempts; attempt++ {
		candidate := float64(lo + p.rng.Intn(hi-lo+1))
		if spaced(candidate, existing, minDist) {
			return candidate, true
		}
	}
	return field.LeftMargin, false
}

func spaced(x float64, existing []*FallingWord, minDist float64) bool {
	for _, w := range existing {
		if math.Abs(w.X-x) < minDist {
			return false
		}
	}
	return true
}
