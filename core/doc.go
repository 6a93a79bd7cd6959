// Package core holds the small pieces shared by every line formatter.
//
// It provides the Clock capability used to read the current time, the
// UTC ISO-8601 rendering used in timestamps, and the hostname resolution
// rule applied when a formatter is constructed.
//
// Formatters never call time.Now directly; they read a Clock so tests can
// substitute a FixedClock and get deterministic output. SystemClock is the
// default. CoarseClock trades sub-millisecond accuracy for a cheaper read
// by sharing a cached time that a background goroutine refreshes every
// 500µs.
package core
