package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	processed    atomic.Uint64
	formatErrors atomic.Uint64
	writeErrors  atomic.Uint64
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal   uint64
	FormatErrorTotal uint64
	WriteErrorTotal  uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementFormatErrors atomically increments the format error counter
func (s *Stats) IncrementFormatErrors() {
	s.formatErrors.Add(1)
}

// IncrementWriteErrors atomically increments the write error counter
func (s *Stats) IncrementWriteErrors() {
	s.writeErrors.Add(1)
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal:   s.processed.Load(),
		FormatErrorTotal: s.formatErrors.Load(),
		WriteErrorTotal:  s.writeErrors.Load(),
	}
}
