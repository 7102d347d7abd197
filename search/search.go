// Package search runs the brute-force vanity key search: a pool of workers
// generating ed25519 key pairs until one's public encoding satisfies the
// pattern.
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidThreadCount reports a negative worker count. Zero selects the
// number of CPUs.
var ErrInvalidThreadCount = errors.New("invalid thread count")

// TerminationReason reports why Run returned.
type TerminationReason int

const (
	// TerminationNone: the search failed before completing.
	TerminationNone TerminationReason = iota
	// TerminationFound: a non-streaming search stopped after its first match.
	TerminationFound
	// TerminationCancelled: the caller's context ended the search. Matches
	// already delivered stand.
	TerminationCancelled
)

func (r TerminationReason) String() string {
	switch r {
	case TerminationFound:
		return "found"
	case TerminationCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Options configures one search call.
type Options struct {
	Pattern       string
	CaseSensitive bool
	Threads       int // 0 means runtime.NumCPU()
	Streaming     bool
	Comment       string

	// Mnemonic and PKCS8 attach extra renderings of the matched key.
	Mnemonic bool
	PKCS8    bool
}

// Match is the immutable record of one successful candidate, built entirely
// by the worker that found it.
type Match struct {
	Worker     int
	Attempts   uint64 // global attempt count when the match was found
	FoundAt    time.Time
	PublicKey  string // single-line authorized_keys form
	PrivateKey string // armored openssh-key-v1 container
	Mnemonic   string // optional, see Options.Mnemonic
	PKCS8      string // optional, see Options.PKCS8
}

// Search holds the compiled pattern and shared counters for one search.
type Search struct {
	opts    Options
	threads int
	matcher *Matcher
	stats   *Stats
}

// New compiles the pattern and validates the worker count. Nothing runs and
// no attempt is counted until Run; a bad pattern fails here with zero
// side effects.
func New(opts Options) (*Search, error) {
	matcher, err := Compile(opts.Pattern, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}
	threads := opts.Threads
	if threads < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreadCount, opts.Threads)
	}
	if threads == 0 {
		threads = runtime.NumCPU()
	}
	return &Search{
		opts:    opts,
		threads: threads,
		matcher: matcher,
		stats:   newStats(),
	}, nil
}

// Stats returns the shared counters, safe to read while Run is in flight.
func (s *Search) Stats() *Stats {
	return s.stats
}

// Threads returns the resolved worker count.
func (s *Search) Threads() int {
	return s.threads
}

// Run drives the worker pool until the stop policy or ctx ends the search.
// onMatch is invoked from the coordinating goroutine, one match at a time.
// All workers are joined before Run returns. A failing worker aborts the
// whole search rather than silently shrinking the pool.
func (s *Search) Run(ctx context.Context, onMatch func(Match, Snapshot)) (TerminationReason, error) {
	searchCtx, stop := context.WithCancel(ctx)
	defer stop()

	g, workerCtx := errgroup.WithContext(searchCtx)
	found := make(chan Match, s.threads)
	for i := 0; i < s.threads; i++ {
		w := &worker{
			id:      i,
			opts:    s.opts,
			matcher: s.matcher,
			stats:   s.stats,
			found:   found,
		}
		g.Go(func() error { return w.run(workerCtx) })
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	emit := func(m Match) {
		if onMatch != nil {
			onMatch(m, s.stats.Snapshot())
		}
	}

	for {
		select {
		case m := <-found:
			emit(m)
			if !s.opts.Streaming {
				stop()
				// Workers racing us may still have matches in flight;
				// exactly one is ever delivered, so drain and drop.
				return TerminationFound, drainUntilDone(done, found, nil)
			}
		case err := <-done:
			// Workers are gone: external cancellation or a failed
			// generation. Deliver what was queued before the stop was
			// observed.
			for {
				select {
				case m := <-found:
					emit(m)
				default:
					if err != nil {
						return TerminationNone, err
					}
					return TerminationCancelled, nil
				}
			}
		}
	}
}

// drainUntilDone keeps the match channel moving so no worker blocks on its
// final send, then reports the pool's error.
func drainUntilDone(done <-chan error, found <-chan Match, emit func(Match)) error {
	for {
		select {
		case m := <-found:
			if emit != nil {
				emit(m)
			}
		case err := <-done:
			return err
		}
	}
}
