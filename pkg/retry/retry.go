// Package retry re-runs short operations that fail with transient errors,
// such as a locked SQLite file while another process migrates it.
package retry

import (
	"context"
	"math/rand/v2"
	"time"
)

// Policy describes how often and how patiently an operation is retried.
type Policy struct {
	// Attempts is the total number of calls, the first one included.
	Attempts int
	Base     time.Duration
	Cap      time.Duration
	// Transient decides whether an error is worth another attempt.
	// A nil Transient retries every error.
	Transient func(error) bool
}

// Default waits 50ms, 100ms, 200ms between four attempts.
func Default(transient func(error) bool) Policy {
	return Policy{
		Attempts:  4,
		Base:      50 * time.Millisecond,
		Cap:       time.Second,
		Transient: transient,
	}
}

// backoff returns the pause before attempt n (1-based retries): the doubled
// base capped at Cap, plus up to a quarter of it as jitter.
func (p Policy) backoff(n int) time.Duration {
	d := p.Base
	for i := 1; i < n && d < p.Cap; i++ {
		d *= 2
	}
	if d > p.Cap {
		d = p.Cap
	}
	if q := d / 4; q > 0 {
		d += rand.N(q)
	}
	return d
}

// Do calls op until it succeeds, fails with a permanent error, runs out of
// attempts or ctx is done. The last error of op is returned.
func Do(ctx context.Context, p Policy, op func() error) error {
	attempts := max(p.Attempts, 1)

	var err error
	for n := 0; n < attempts; n++ {
		if n > 0 {
			t := time.NewTimer(p.backoff(n))
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}

		if err = op(); err == nil {
			return nil
		}
		if p.Transient != nil && !p.Transient(err) {
			return err
		}
	}
	return err
}
