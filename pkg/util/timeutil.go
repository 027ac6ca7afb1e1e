package util

import "time"

// Clock returns the current instant. Services take one so tests can pin time.
type Clock func() time.Time

// NowUTC is the production Clock.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ClockOrDefault falls back to NowUTC for a nil clock.
func ClockOrDefault(c Clock) Clock {
	if c == nil {
		return NowUTC
	}
	return c
}
