// Package emailcheck simulates the remote email-uniqueness lookup: a fixed
// delay followed by a deterministic verdict against a set of reserved
// addresses. The interface exists so sessions can be tested with an instant
// checker.
package emailcheck

import (
	"context"
	"strings"
	"time"
)

// DefaultDelay is the simulated round-trip of the directory lookup.
const DefaultDelay = 500 * time.Millisecond

// Sentinel is the reserved address that always reports a conflict.
const Sentinel = "test@test.test"

// Checker decides whether an email address is available. Implementations
// must honor context cancellation while waiting.
type Checker interface {
	Check(ctx context.Context, email string) (available bool, err error)
}

// Normalize trims surrounding whitespace and case-folds the address; the
// directory compares normalized forms only.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Option configures the simulated directory.
type Option func(*SimulatedDirectory)

// WithDelay overrides the simulated lookup delay. Zero is allowed and useful
// in tests.
func WithDelay(delay time.Duration) Option {
	return func(d *SimulatedDirectory) {
		if delay >= 0 {
			d.delay = delay
		}
	}
}

// WithReserved replaces the reserved address set.
func WithReserved(emails ...string) Option {
	return func(d *SimulatedDirectory) {
		d.reserved = make(map[string]struct{}, len(emails))
		for _, email := range emails {
			d.reserved[Normalize(email)] = struct{}{}
		}
	}
}

// SimulatedDirectory is the stand-in for a remote registry of taken
// addresses. It never fails other than by cancellation.
type SimulatedDirectory struct {
	delay    time.Duration
	reserved map[string]struct{}
}

// NewSimulatedDirectory constructs a directory with the default delay and
// the single sentinel address reserved.
func NewSimulatedDirectory(options ...Option) *SimulatedDirectory {
	d := &SimulatedDirectory{
		delay:    DefaultDelay,
		reserved: map[string]struct{}{Sentinel: {}},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Check waits the configured delay, then reports whether the address is
// free. The wait runs on the caller's goroutine; callers that must stay
// responsive run Check concurrently and apply the result through a
// staleness guard (see Sequence).
func (d *SimulatedDirectory) Check(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	}
	_, taken := d.reserved[Normalize(email)]
	return !taken, nil
}
