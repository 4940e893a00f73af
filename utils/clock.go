package utils

import "time"

// Clock returns the current instant. Services take one so tests can pin "now".
type Clock func() time.Time

// SystemClock returns a Clock reading wall time in loc (nil = time.Local).
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
