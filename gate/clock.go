/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package gate

import "time"

// Clock is a source of the current instant.
// Implementations should return values with a monotonic clock reading (as time.Now does)
// so that wall clock adjustments do not affect elapsed time computation.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock that uses time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

var defaultClock Clock = SystemClock{}

func normalizeInterval(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
