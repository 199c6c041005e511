// Package refresh keeps the metrics cache warm in the background so the
// first visitor of a day does not wait for the source.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/scholarfolio/internal/domain/scholar"
	"github.com/okian/scholarfolio/pkg/logger"
	"github.com/okian/scholarfolio/pkg/metrics"
)

// DefaultInterval is used when no interval is configured.
const DefaultInterval = time.Hour

// Getter is the cache read the refresher drives.
type Getter interface {
	GetMetrics(ctx context.Context) scholar.Result
}

// Refresher calls Getter.GetMetrics on start and then on every tick. The
// cache decides whether a call is a hit or a fetch.
type Refresher struct {
	getter   Getter
	interval time.Duration
	name     string

	running      atomic.Bool
	shutdown     chan struct{}
	shutdownOnce sync.Once
	done         chan struct{}

	logger logger.Logger
}

// New creates a refresher.
func New(getter Getter, opts ...Option) *Refresher {
	r := &Refresher{
		getter:   getter,
		interval: DefaultInterval,
		name:     "refresher",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.Named(r.name)
	return r
}

// Run refreshes until ctx is canceled or Shutdown is called, then returns
// nil so it can sit in an errgroup beside the HTTP server. A Refresher runs
// once; later calls return ErrAlreadyRun.
func (r *Refresher) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info(ctx, "metrics refresher started", logger.Duration("interval", r.interval))
	r.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.shutdown:
			return nil
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// Shutdown stops Run and waits for it to return.
func (r *Refresher) Shutdown(ctx context.Context) error {
	r.shutdownOnce.Do(func() { close(r.shutdown) })

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		r.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	res := r.getter.GetMetrics(ctx)
	metrics.RecordRefreshRun(string(res.Origin))
	if res.Origin == scholar.OriginFallback {
		r.logger.Warn(ctx, "metrics refresh fell back", logger.Error(res.Err))
		return
	}
	r.logger.Debug(ctx, "metrics refreshed",
		logger.String("origin", string(res.Origin)),
		logger.Time("lastUpdated", res.Metrics.LastUpdated),
	)
}
