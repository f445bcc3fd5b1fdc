// Package timer provides polled elapsed-time windows for gating repeatable actions.
package timer

import "time"

// Clock supplies the current monotonic time. The game loop samples it once per frame.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock (time.Now carries a monotonic reading).
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Timer measures a fixed-duration window from an origin timestamp.
// It never schedules anything on its own; callers poll it with the frame's "now".
type Timer struct {
	Duration time.Duration
	origin   time.Time
}

// New creates a timer with the given window, started at now.
func New(d time.Duration, now time.Time) Timer {
	return Timer{Duration: d, origin: now}
}

// Start records now as the origin of the window.
func (t *Timer) Start(now time.Time) {
	t.origin = now
}

// Elapsed returns the time passed since the origin.
func (t Timer) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.origin)
}

// Expired reports whether the window has fully elapsed.
func (t Timer) Expired(now time.Time) bool {
	return t.Elapsed(now) >= t.Duration
}

// Origin returns the timestamp recorded by the last Start.
func (t Timer) Origin() time.Time {
	return t.origin
}
