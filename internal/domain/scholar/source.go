package scholar

import (
	"context"
	"time"
)

// DefaultFetchDelay is the artificial latency of StaticSource.
const DefaultFetchDelay = time.Second

// Source produces a fresh Metrics snapshot. Real providers (a scraping
// backend, an academic API) plug in here.
type Source interface {
	Fetch(ctx context.Context) (Metrics, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Metrics, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context) (Metrics, error) { return f(ctx) }

// StaticSource waits for a fixed delay and returns its base counts with a
// fresh timestamp. It stands in for a real provider.
type StaticSource struct {
	base  Metrics
	delay time.Duration
	now   func() time.Time
}

// NewStaticSource creates a StaticSource. A nil clock uses time.Now.
func NewStaticSource(base Metrics, delay time.Duration, now func() time.Time) *StaticSource {
	if now == nil {
		now = time.Now
	}
	if delay < 0 {
		delay = 0
	}
	return &StaticSource{base: base, delay: delay, now: now}
}

// Fetch honours ctx cancellation while waiting.
func (s *StaticSource) Fetch(ctx context.Context) (Metrics, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Metrics{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Metrics{}, err
	}

	m := s.base
	m.LastUpdated = s.now().UTC()
	return m, nil
}
