package game

import "time"

// Clock supplies the current time. Session uses it for the reference
// points set by Start, Reset and resuming from pause; Update receives its
// time from the driver.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}
