package search

import (
	"context"
	"fmt"
	"time"

	"github.com/opendream/vanityssh/sshkey"
)

// worker owns no shared key state: every candidate is generated, tested and
// discarded locally. Only the counters and the stop signal are shared. The
// per-iteration context check is the only cancellation point; an attempt in
// flight always completes.
type worker struct {
	id      int
	opts    Options
	matcher *Matcher
	stats   *Stats
	found   chan<- Match
}

func (w *worker) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			pair, err := sshkey.Generate()
			if err != nil {
				return fmt.Errorf("worker %d: %w", w.id, err)
			}
			w.stats.addAttempt()

			if !w.matcher.Match(sshkey.PublicBody(pair.Public)) {
				continue
			}

			m, err := w.report(pair)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w.id, err)
			}
			w.stats.addMatch()
			w.found <- m
		}
	}
}

// report performs the full public+private encoding for a matched pair.
func (w *worker) report(pair sshkey.KeyPair) (Match, error) {
	private, err := sshkey.EncodePrivate(pair, w.opts.Comment)
	if err != nil {
		return Match{}, err
	}
	m := Match{
		Worker:     w.id,
		Attempts:   w.stats.Attempts(),
		FoundAt:    time.Now(),
		PublicKey:  sshkey.EncodePublic(pair.Public, w.opts.Comment),
		PrivateKey: private,
	}
	if w.opts.Mnemonic {
		if m.Mnemonic, err = sshkey.SeedMnemonic(pair); err != nil {
			return Match{}, err
		}
	}
	if w.opts.PKCS8 {
		if m.PKCS8, err = sshkey.EncodePKCS8(pair); err != nil {
			return Match{}, err
		}
	}
	return m, nil
}
