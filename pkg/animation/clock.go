// Package animation provides the timing primitives behind the floating-label
// transition: a frame-pumped [Ticker], an [AnimationController] that maps
// elapsed time to an eased 0-1 value, and [Tween] for interpolating colors,
// offsets and transforms from that value.
//
// The package has no frame loop of its own. The embedding toolkit (or a
// test) advances time by calling [StepTickers] once per frame. Tests inject
// a fake clock via [SetClock] to make transitions fully deterministic.
package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to control
// animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
