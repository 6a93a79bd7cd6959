package core

import "time"

// Clock reads the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock on every call.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the stored instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
