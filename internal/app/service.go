// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the site.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/scholarfolio/internal/adapters/kv"
	"github.com/okian/scholarfolio/internal/domain/content"
	"github.com/okian/scholarfolio/internal/domain/scholar"
	"github.com/okian/scholarfolio/pkg/logger"
)

// Service owns the metrics store and cache.
type Service struct {
	mu sync.RWMutex

	// Core components
	store kv.Store
	cache *scholar.Cache

	// Configuration
	storeDriver string
	storePath   string
	injected    kv.Store
	fetchDelay  time.Duration
	location    *time.Location
	source      scholar.Source
	now         func() time.Time

	// State
	started   bool
	startedAt time.Time
	fallback  scholar.Metrics

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore selects the key-value store driver and its path.
func WithStore(driver, path string) Option {
	return func(s *Service) {
		if driver != "" {
			s.storeDriver = driver
			s.storePath = path
		}
	}
}

// WithKVStore uses an already opened store instead of opening one. The
// caller keeps ownership: Stop leaves it open so the service can restart
// over it.
func WithKVStore(store kv.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.injected = store
		}
	}
}

// WithFetchDelay sets the artificial latency of the default source.
func WithFetchDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.fetchDelay = d
		}
	}
}

// WithLocation sets the zone that defines a calendar day for the cache.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithSource replaces the default static source.
func WithSource(src scholar.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithClock sets the clock shared by the cache and its default source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storeDriver: kv.DriverMemory,
		fetchDelay:  scholar.DefaultFetchDelay,
		location:    time.Local,
		now:         time.Now,
		logger:      nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	s.fallback = scholar.DefaultFallback(s.now())
	return s
}

// Start opens the store and builds the metrics cache.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting portfolio service...")

	store := s.injected
	if store == nil {
		opened, err := kv.Open(ctx, s.storeDriver, s.storePath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOpenStore, err)
		}
		store = opened
	}
	s.store = store

	source := s.source
	if source == nil {
		source = scholar.NewStaticSource(s.fallback, s.fetchDelay, s.now)
	}
	s.cache = scholar.NewCache(store,
		scholar.WithSource(source),
		scholar.WithClock(s.now),
		scholar.WithLocation(s.location),
		scholar.WithLogger(s.logger.Named("metrics-cache")),
	)
	s.fallback = s.cache.Fallback()

	s.started = true
	s.startedAt = s.now()
	s.logger.Info(ctx, "portfolio service started",
		logger.String("storeDriver", kv.DriverOf(store)),
		logger.String("storePath", s.storePath),
		logger.Duration("fetchDelay", s.fetchDelay),
		logger.String("timezone", s.location.String()),
	)

	return nil
}

// Stop closes the store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping portfolio service...")
	s.cache.Close()
	if s.injected == nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn(context.Background(), "failed to close metrics store", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(context.Background(), "portfolio service stopped")
}

// GetMetrics returns the current snapshot. Before Start it returns the
// fallback snapshot.
func (s *Service) GetMetrics(ctx context.Context) scholar.Result {
	s.mu.RLock()
	cache, started, fallback := s.cache, s.started, s.fallback
	s.mu.RUnlock()

	if !started {
		return scholar.Result{Metrics: fallback, Origin: scholar.OriginFallback, Err: ErrNotStarted}
	}
	return cache.GetMetrics(ctx)
}

// PeekMetrics returns today's snapshot without waiting on the source. A
// miss serves the fallback counts and refreshes in the background.
func (s *Service) PeekMetrics(ctx context.Context) scholar.Result {
	s.mu.RLock()
	cache, started, fallback := s.cache, s.started, s.fallback
	s.mu.RUnlock()

	if !started {
		return scholar.Result{Metrics: fallback, Origin: scholar.OriginFallback, Err: ErrNotStarted}
	}
	return cache.Peek(ctx)
}

// SetMetrics stores a manual correction.
func (s *Service) SetMetrics(ctx context.Context, p scholar.Partial) (scholar.Metrics, error) {
	s.mu.RLock()
	cache, started := s.cache, s.started
	s.mu.RUnlock()

	if !started {
		return scholar.Metrics{}, ErrNotStarted
	}
	return cache.SetMetrics(ctx, p)
}

// Profile returns the static portfolio content.
func (s *Service) Profile(context.Context) content.Portfolio {
	return content.Profile()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":        s.started,
		"store_driver":   s.storeDriver,
		"fetch_delay_ms": s.fetchDelay.Milliseconds(),
		"timezone":       s.location.String(),
		"fallback":       s.fallback,
	}
	if s.started {
		stats["store_driver"] = kv.DriverOf(s.store)
		stats["uptime_seconds"] = int64(s.now().Sub(s.startedAt).Seconds())
	}
	return stats
}
