package search

import (
	"sync/atomic"
	"time"
)

// Stats aggregates the counters shared by all workers. They only ever move
// forward, through atomic increments.
type Stats struct {
	start    time.Time
	attempts atomic.Uint64
	matches  atomic.Uint64
}

func newStats() *Stats {
	return &Stats{start: time.Now()}
}

func (s *Stats) addAttempt() {
	s.attempts.Add(1)
}

func (s *Stats) addMatch() {
	s.matches.Add(1)
}

// Attempts returns the total generation attempts across all workers.
func (s *Stats) Attempts() uint64 {
	return s.attempts.Load()
}

// Matches returns the total matches found across all workers.
func (s *Stats) Matches() uint64 {
	return s.matches.Load()
}

// Snapshot is a point-in-time view used for reporting.
type Snapshot struct {
	Attempts  uint64
	Matches   uint64
	Elapsed   time.Duration
	PerSecond float64
}

func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Attempts: s.attempts.Load(),
		Matches:  s.matches.Load(),
		Elapsed:  time.Since(s.start),
	}
	if secs := snap.Elapsed.Seconds(); secs > 0 {
		snap.PerSecond = float64(snap.Attempts) / secs
	}
	return snap
}
