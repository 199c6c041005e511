package scholar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/okian/scholarfolio/internal/adapters/kv"
	"github.com/okian/scholarfolio/pkg/logger"
	"github.com/okian/scholarfolio/pkg/metrics"
)

// Storage keys. They match the names the site has always used so existing
// stores stay readable.
const (
	SnapshotKey = "scholarMetrics"
	DateKey     = "scholarMetricsDate"
)

const refreshKey = "refresh"

// DefaultRefreshTimeout bounds a shared source fetch.
const DefaultRefreshTimeout = 30 * time.Second

// Origin tells which path produced a Result.
type Origin string

const (
	OriginCache    Origin = "cache"
	OriginFetched  Origin = "fetched"
	OriginFallback Origin = "fallback"
	// OriginPending marks fallback counts served by Peek while a refresh
	// runs in the background.
	OriginPending Origin = "pending"
)

// Result is the answer of Cache.GetMetrics and Cache.Peek. Err is set only
// for OriginFallback and carries the swallowed cause.
type Result struct {
	Metrics Metrics
	Origin  Origin
	Err     error
}

// Cache serves Metrics from a store, refreshing at most once per calendar day
// in its location. Concurrent misses share one source fetch, which runs
// detached from any single caller's cancellation.
type Cache struct {
	store          kv.Store
	source         Source
	now            func() time.Time
	loc            *time.Location
	logger         logger.Logger
	fallback       Metrics
	refreshTimeout time.Duration

	group singleflight.Group

	closeMu sync.RWMutex
	closed  bool

	stampMu   sync.Mutex
	lastStamp time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithSource replaces the default StaticSource.
func WithSource(src Source) Option {
	return func(c *Cache) {
		if src != nil {
			c.source = src
		}
	}
}

// WithClock sets the time source used for stamps and day comparisons.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the zone that defines a calendar day.
func WithLocation(loc *time.Location) Option {
	return func(c *Cache) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRefreshTimeout bounds each shared source fetch and the writes after it.
func WithRefreshTimeout(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.refreshTimeout = d
		}
	}
}

// NewCache builds a Cache over store. The fallback snapshot is stamped once,
// here. Without WithSource the cache uses a StaticSource returning the
// fallback counts after DefaultFetchDelay.
func NewCache(store kv.Store, opts ...Option) *Cache {
	c := &Cache{
		store:          store,
		now:            time.Now,
		loc:            time.Local,
		logger:         logger.Discard(),
		refreshTimeout: DefaultRefreshTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.fallback = DefaultFallback(c.now())
	c.lastStamp = c.fallback.LastUpdated
	if c.source == nil {
		c.source = NewStaticSource(c.fallback, DefaultFetchDelay, c.now)
	}
	return c
}

// Fallback returns the process-wide fallback snapshot.
func (c *Cache) Fallback() Metrics {
	return c.fallback
}

// GetMetrics returns today's cached snapshot, or fetches and stores a new
// one. Any failure yields the fallback snapshot; nothing is returned as an
// error. A caller whose ctx ends while waiting gets the fallback, but the
// shared fetch keeps running for the other callers.
func (c *Cache) GetMetrics(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return c.fail(ctx, err)
	}
	cached, hit, err := c.readToday(ctx)
	if err != nil {
		return c.fail(ctx, err)
	}
	if hit {
		return c.done(Result{Metrics: cached, Origin: OriginCache})
	}

	select {
	case r := <-c.startRefresh(ctx):
		if r.Err != nil {
			return c.fail(ctx, r.Err)
		}
		if r.Shared {
			c.logger.Debug(ctx, "joined in-flight metrics refresh")
		}
		return c.done(Result{Metrics: r.Val.(Metrics), Origin: OriginFetched})
	case <-ctx.Done():
		return c.fail(ctx, ctx.Err())
	}
}

// Peek returns today's cached snapshot without waiting on the source. On a
// miss it serves the fallback counts as OriginPending and starts a refresh
// in the background.
func (c *Cache) Peek(ctx context.Context) Result {
	cached, hit, err := c.readToday(ctx)
	if err != nil {
		return c.fail(ctx, err)
	}
	if hit {
		return c.done(Result{Metrics: cached, Origin: OriginCache})
	}
	// DoChan's channel is buffered, so the result may be dropped.
	_ = c.startRefresh(ctx)
	return c.done(Result{Metrics: c.fallback, Origin: OriginPending})
}

// Close waits for in-flight refreshes and rejects later ones. The store is
// left open.
func (c *Cache) Close() {
	c.closeMu.Lock()
	c.closed = true
	c.closeMu.Unlock()
}

// startRefresh joins or starts the shared fetch. The fetch keeps ctx values
// but not its cancellation, and is bounded by the refresh timeout.
func (c *Cache) startRefresh(ctx context.Context) <-chan singleflight.Result {
	return c.group.DoChan(refreshKey, func() (any, error) {
		c.closeMu.RLock()
		defer c.closeMu.RUnlock()
		if c.closed {
			return nil, ErrCacheClosed
		}

		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.refreshTimeout)
		defer cancel()
		m, err := c.refresh(rctx)
		if err != nil {
			// Peek drops the result, so failures are logged here.
			c.logger.Warn(rctx, "metrics refresh failed", logger.Error(err))
			return nil, err
		}
		return m, nil
	})
}

// SetMetrics merges p over the fallback snapshot (not the cached one), stamps
// it and stores it as today's snapshot. Store failures are returned.
func (c *Cache) SetMetrics(ctx context.Context, p Partial) (Metrics, error) {
	if err := p.Validate(); err != nil {
		return Metrics{}, err
	}
	m := p.Apply(c.fallback)
	m.LastUpdated = c.stamp(c.now())

	if err := c.persist(ctx, m); err != nil {
		return Metrics{}, err
	}
	c.logger.Info(ctx, "scholar metrics updated manually",
		logger.Int("totalCitations", m.TotalCitations),
		logger.Int("hIndex", m.HIndex),
		logger.Int("publicationCount", m.PublicationCount),
	)
	metrics.UpdateSnapshot(m.TotalCitations, m.HIndex, m.PublicationCount)
	return m, nil
}

// readToday loads the stored snapshot when its date falls on today. A
// missing key or a date from another day is a miss, not an error.
func (c *Cache) readToday(ctx context.Context) (Metrics, bool, error) {
	raw, err := c.store.Get(ctx, SnapshotKey)
	if errors.Is(err, kv.ErrNotFound) {
		return Metrics{}, false, nil
	}
	if err != nil {
		return Metrics{}, false, fmt.Errorf("read %s: %w", SnapshotKey, err)
	}

	rawDate, err := c.store.Get(ctx, DateKey)
	if errors.Is(err, kv.ErrNotFound) {
		return Metrics{}, false, nil
	}
	if err != nil {
		return Metrics{}, false, fmt.Errorf("read %s: %w", DateKey, err)
	}

	stored, err := time.Parse(time.RFC3339Nano, rawDate)
	if err != nil || !c.sameDay(stored, c.now()) {
		return Metrics{}, false, nil
	}

	var m Metrics
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return Metrics{}, false, fmt.Errorf("%w: %w", ErrDecodeSnapshot, err)
	}
	if err := m.Validate(); err != nil {
		return Metrics{}, false, fmt.Errorf("%w: %w", ErrDecodeSnapshot, err)
	}
	return m, true, nil
}

// refresh fetches from the source and persists the result.
func (c *Cache) refresh(ctx context.Context) (Metrics, error) {
	start := time.Now()
	m, err := c.source.Fetch(ctx)
	metrics.RecordSourceFetchLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return Metrics{}, fmt.Errorf("%w: %w", ErrSourceFailed, err)
	}
	if err := m.Validate(); err != nil {
		return Metrics{}, fmt.Errorf("%w: %w", ErrSourceFailed, err)
	}

	m.LastUpdated = c.stamp(m.LastUpdated)
	if err := c.persist(ctx, m); err != nil {
		return Metrics{}, err
	}
	c.logger.Info(ctx, "scholar metrics refreshed", logger.Time("lastUpdated", m.LastUpdated))
	return m, nil
}

// persist writes the snapshot and today's date.
func (c *Cache) persist(ctx context.Context, m Metrics) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.store.Set(ctx, SnapshotKey, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", SnapshotKey, err)
	}
	today := c.now().UTC().Format(time.RFC3339Nano)
	if err := c.store.Set(ctx, DateKey, today); err != nil {
		return fmt.Errorf("write %s: %w", DateKey, err)
	}
	return nil
}

// stamp returns t in UTC, moved forward if needed so that stamps handed out
// by this cache strictly increase, starting after the fallback stamp.
func (c *Cache) stamp(t time.Time) time.Time {
	c.stampMu.Lock()
	defer c.stampMu.Unlock()

	t = t.UTC()
	if !t.After(c.lastStamp) {
		t = c.lastStamp.Add(time.Nanosecond)
	}
	c.lastStamp = t
	return t
}

func (c *Cache) sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(c.loc).Date()
	by, bm, bd := b.In(c.loc).Date()
	return ay == by && am == bm && ad == bd
}

func (c *Cache) fail(ctx context.Context, err error) Result {
	c.logger.Warn(ctx, "failed to fetch scholar metrics, using fallback data", logger.Error(err))
	return c.done(Result{Metrics: c.fallback, Origin: OriginFallback, Err: err})
}

func (c *Cache) done(r Result) Result {
	metrics.RecordCacheOutcome(string(r.Origin))
	metrics.UpdateSnapshot(r.Metrics.TotalCitations, r.Metrics.HIndex, r.Metrics.PublicationCount)
	return r
}
