package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/scholarfolio/internal/adapters/kv"
	service "github.com/okian/scholarfolio/internal/app"
	"github.com/okian/scholarfolio/internal/domain/scholar"
	"github.com/okian/scholarfolio/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, false)
			So(stats["store_driver"], ShouldEqual, kv.DriverMemory)
			So(stats["fetch_delay_ms"], ShouldEqual, int64(1000))
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithStore(kv.DriverSQLite, ":memory:"),
			service.WithFetchDelay(0),
			service.WithLocation(time.UTC),
		)

		Convey("Then the options should be reflected in stats", func() {
			stats := svc.GetStats()
			So(stats["store_driver"], ShouldEqual, kv.DriverSQLite)
			So(stats["fetch_delay_ms"], ShouldEqual, int64(0))
			So(stats["timezone"], ShouldEqual, "UTC")
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New(service.WithFetchDelay(0))
		// Ensure service is stopped after test
		defer svc.Stop()

		Convey("When starting the service", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And it should be marked as started", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["store_driver"], ShouldEqual, kv.DriverMemory)
				So(stats, ShouldContainKey, "uptime_seconds")
			})

			Convey("And starting again should be a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})
	})

	Convey("Given a service with an unknown store driver", t, func() {
		svc := service.New(service.WithStore("redis", "localhost:6379"))

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())

			Convey("Then it should fail to open the store", func() {
				So(errors.Is(err, service.ErrOpenStore), ShouldBeTrue)
				So(errors.Is(err, kv.ErrUnknownDriver), ShouldBeTrue)
			})
		})
	})
}

func TestService_BeforeStart(t *testing.T) {
	Convey("Given a service that was never started", t, func() {
		svc := service.New()

		Convey("When reading metrics", func() {
			res := svc.GetMetrics(context.Background())

			Convey("Then the fallback should be returned", func() {
				So(res.Origin, ShouldEqual, scholar.OriginFallback)
				So(errors.Is(res.Err, service.ErrNotStarted), ShouldBeTrue)
				So(res.Metrics.TotalCitations, ShouldEqual, scholar.FallbackCitations)
			})
		})

		Convey("When setting metrics", func() {
			_, err := svc.SetMetrics(context.Background(), scholar.Partial{})

			Convey("Then it should report that it is not started", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When stopping", func() {
			Convey("Then it should not panic", func() {
				So(svc.Stop, ShouldNotPanic)
			})
		})
	})
}

func TestService_Metrics(t *testing.T) {
	Convey("Given a started service over an injected store", t, func() {
		ctx := context.Background()
		store := kv.NewMemoryStore()
		now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
		svc := service.New(
			service.WithKVStore(store),
			service.WithFetchDelay(0),
			service.WithLocation(time.UTC),
			service.WithClock(func() time.Time { return now }),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When reading metrics twice", func() {
			first := svc.GetMetrics(ctx)
			second := svc.GetMetrics(ctx)

			Convey("Then the first should be fetched and the second cached", func() {
				So(first.Origin, ShouldEqual, scholar.OriginFetched)
				So(second.Origin, ShouldEqual, scholar.OriginCache)
				So(second.Metrics, ShouldResemble, first.Metrics)
				So(store.Len(), ShouldEqual, 2)
			})

			Convey("And stats should name the injected store", func() {
				So(svc.GetStats()["store_driver"], ShouldEqual, "custom")
			})
		})

		Convey("When a manual correction is stored", func() {
			h := 12
			m, err := svc.SetMetrics(ctx, scholar.Partial{HIndex: &h})

			Convey("Then it should be served from the cache", func() {
				So(err, ShouldBeNil)
				So(m.HIndex, ShouldEqual, 12)
				So(m.TotalCitations, ShouldEqual, scholar.FallbackCitations)
				res := svc.GetMetrics(ctx)
				So(res.Origin, ShouldEqual, scholar.OriginCache)
				So(res.Metrics, ShouldResemble, m)
			})
		})

		Convey("When the profile is requested", func() {
			p := svc.Profile(ctx)

			Convey("Then the static content should be returned", func() {
				So(p.Hero.Name, ShouldEqual, "Dr. Sergey Galitskiy")
			})
		})
	})

	Convey("Given a started service with a custom source", t, func() {
		ctx := context.Background()
		src := scholar.SourceFunc(func(context.Context) (scholar.Metrics, error) {
			return scholar.Metrics{TotalCitations: 400, HIndex: 10, PublicationCount: 25, LastUpdated: time.Now()}, nil
		})
		svc := service.New(service.WithSource(src))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When reading metrics", func() {
			res := svc.GetMetrics(ctx)

			Convey("Then the source's counts should be served", func() {
				So(res.Origin, ShouldEqual, scholar.OriginFetched)
				So(res.Metrics.TotalCitations, ShouldEqual, 400)
			})
		})
	})
}

func TestService_PeekMetrics(t *testing.T) {
	Convey("Given a service with a slow source", t, func() {
		ctx := context.Background()
		release := make(chan struct{})
		svc := service.New(
			service.WithSource(scholar.SourceFunc(func(context.Context) (scholar.Metrics, error) {
				<-release
				return scholar.DefaultFallback(time.Now()), nil
			})),
			service.WithLogger(logger.Discard()),
		)

		Convey("When peeking before Start", func() {
			res := svc.PeekMetrics(ctx)

			Convey("Then it should report that it is not started", func() {
				So(res.Origin, ShouldEqual, scholar.OriginFallback)
				So(errors.Is(res.Err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When peeking a cold cache after Start", func() {
			So(svc.Start(ctx), ShouldBeNil)
			res := svc.PeekMetrics(ctx)
			close(release)
			fetched := svc.GetMetrics(ctx)
			svc.Stop()

			Convey("Then the fallback counts should be served as pending", func() {
				So(res.Origin, ShouldEqual, scholar.OriginPending)
				So(res.Metrics.TotalCitations, ShouldEqual, scholar.FallbackCitations)
				So(fetched.Origin, ShouldEqual, scholar.OriginFetched)
			})
		})
	})
}

func TestService_RestartOverInjectedStore(t *testing.T) {
	Convey("Given a service over an injected sqlite store", t, func() {
		ctx := context.Background()
		store, err := kv.NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "metrics.db"))
		So(err, ShouldBeNil)
		defer func() { _ = store.Close() }()

		svc := service.New(service.WithKVStore(store), service.WithFetchDelay(0), service.WithLogger(logger.Discard()))
		So(svc.Start(ctx), ShouldBeNil)
		first := svc.GetMetrics(ctx)

		Convey("When the service is stopped and started again", func() {
			svc.Stop()
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()
			again := svc.GetMetrics(ctx)

			Convey("Then the store should still be usable and hold the snapshot", func() {
				So(first.Origin, ShouldEqual, scholar.OriginFetched)
				So(again.Origin, ShouldEqual, scholar.OriginCache)
				So(again.Err, ShouldBeNil)
				So(again.Metrics.TotalCitations, ShouldEqual, first.Metrics.TotalCitations)
				So(again.Metrics.LastUpdated.Equal(first.Metrics.LastUpdated), ShouldBeTrue)
			})
		})
	})
}
