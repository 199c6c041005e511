package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/scholarfolio/pkg/metrics"
)

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Open builds the store for driver and wraps it with metrics instrumentation.
func Open(ctx context.Context, driver, path string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch driver {
	case DriverMemory:
		s = NewMemoryStore()
	case DriverFile:
		s, err = NewFileStore(path)
	case DriverSQLite:
		s, err = NewSQLiteStore(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}
	return Instrument(driver, s), nil
}

// Instrument records latency and failures of every call on s.
func Instrument(driver string, s Store) Store {
	return &instrumented{driver: driver, next: s}
}

type instrumented struct {
	driver string
	next   Store
}

func (i *instrumented) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	v, err := i.next.Get(ctx, key)
	i.observe("get", start, err)
	return v, err
}

func (i *instrumented) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := i.next.Set(ctx, key, value)
	i.observe("set", start, err)
	return err
}

func (i *instrumented) Close() error {
	return i.next.Close()
}

// Driver reports the wrapped backend name.
func (i *instrumented) Driver() string { return i.driver }

func (i *instrumented) observe(op string, start time.Time, err error) {
	metrics.RecordStoreOperation(i.driver, op, float64(time.Since(start).Microseconds())/1000)
	// a miss is a normal answer, not a failure
	if err != nil && !errors.Is(err, ErrNotFound) {
		metrics.RecordStoreError(i.driver, op)
	}
}

// DriverOf returns the driver name of a store built by Open, or "custom".
func DriverOf(s Store) string {
	if d, ok := s.(interface{ Driver() string }); ok {
		return d.Driver()
	}
	return "custom"
}
