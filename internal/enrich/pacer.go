package enrich

import (
	"context"
	"time"
)

// Pacer inserts a delay between completion calls so the batch respects
// external rate limits. The policy is injected so tests and future
// worker-pool variants can swap it without touching the per-row logic.
type Pacer interface {
	Pause(ctx context.Context)
}

// fixedPacer waits a constant duration.
type fixedPacer struct {
	d time.Duration
}

// NewFixedPacer returns a Pacer that pauses for d after every call.
func NewFixedPacer(d time.Duration) Pacer {
	return fixedPacer{d: d}
}

func (p fixedPacer) Pause(ctx context.Context) {
	select {
	case <-time.After(p.d):
	case <-ctx.Done():
	}
}

// NoopPacer skips the pause. Useful for tests.
type NoopPacer struct{}

func (NoopPacer) Pause(context.Context) {}
