package handler

import "sync/atomic"

// Stats tracks handler counters. All methods are safe for concurrent
// use.
type Stats struct {
	emitted uint64
	dropped uint64
	failed  uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEmitted atomically increments the emitted-segment counter
func (s *Stats) IncrementEmitted() {
	atomic.AddUint64(&s.emitted, 1)
}

// IncrementDropped atomically increments the filtered-out counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.dropped, 1)
}

// IncrementFailed atomically increments the write-failure counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.failed, 1)
}

// Emitted returns the number of segments written to the platform
func (s *Stats) Emitted() uint64 {
	return atomic.LoadUint64(&s.emitted)
}

// Dropped returns the number of records rejected by the filter
func (s *Stats) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}

// Failed returns the number of failed platform writes
func (s *Stats) Failed() uint64 {
	return atomic.LoadUint64(&s.failed)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.emitted, 0)
	atomic.StoreUint64(&s.dropped, 0)
	atomic.StoreUint64(&s.failed, 0)
}
