// Package render hands finished view-models to output collaborators: JSON
// for external renderers and styled markdown for terminals.
package render

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotReady means a collaborator did not become ready within its policy.
var ErrNotReady = errors.New("renderer not ready")

// Capability reports whether a collaborator can accept work.
type Capability interface {
	Ready() bool
}

// CapabilityFunc adapts a function to Capability.
type CapabilityFunc func() bool

func (f CapabilityFunc) Ready() bool { return f() }

// Policy bounds how long Await polls.
type Policy struct {
	Interval    time.Duration
	MaxAttempts int
}

var DefaultPolicy = Policy{Interval: 100 * time.Millisecond, MaxAttempts: 30}

// PolicyFor spreads timeout over attempts at the default interval.
func PolicyFor(timeout time.Duration) Policy {
	p := DefaultPolicy
	if timeout > 0 {
		p.MaxAttempts = max(1, int(timeout/p.Interval))
	}
	return p
}

// Await checks c immediately and then once per interval until it is ready,
// the attempts run out, or ctx ends.
func Await(ctx context.Context, c Capability, p Policy) error {
	if p.Interval <= 0 {
		p.Interval = DefaultPolicy.Interval
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultPolicy.MaxAttempts
	}
	if c.Ready() {
		return nil
	}

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for attempt := 1; attempt < p.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if c.Ready() {
			return nil
		}
	}
	return fmt.Errorf("%w after %d attempts", ErrNotReady, p.MaxAttempts)
}
