package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/goleak"

	"github.com/okian/scholarfolio/internal/domain/scholar"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingGetter struct {
	calls  atomic.Int32
	origin scholar.Origin
}

func (g *countingGetter) GetMetrics(context.Context) scholar.Result {
	g.calls.Add(1)
	res := scholar.Result{Metrics: scholar.DefaultFallback(time.Now()), Origin: g.origin}
	if g.origin == scholar.OriginFallback {
		res.Err = errors.New("store down")
	}
	return res
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func TestRefresher(t *testing.T) {
	Convey("Given a refresher with a short interval", t, func() {
		getter := &countingGetter{origin: scholar.OriginFetched}
		r := New(getter, WithInterval(5*time.Millisecond), WithName("test-refresher"))

		Convey("When it runs until the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() { errCh <- r.Run(ctx) }()

			So(waitFor(func() bool { return getter.calls.Load() >= 3 }), ShouldBeTrue)
			cancel()

			Convey("Then it should refresh repeatedly and return nil", func() {
				So(<-errCh, ShouldBeNil)
			})
		})

		Convey("When it is shut down", func() {
			errCh := make(chan error, 1)
			go func() { errCh <- r.Run(context.Background()) }()
			So(waitFor(func() bool { return getter.calls.Load() >= 1 }), ShouldBeTrue)

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			err := r.Shutdown(ctx)

			Convey("Then Run should return and a second shutdown should be harmless", func() {
				So(err, ShouldBeNil)
				So(<-errCh, ShouldBeNil)
				So(r.Shutdown(ctx), ShouldBeNil)
			})

			Convey("And running it again should be refused without panicking", func() {
				So(<-errCh, ShouldBeNil)
				var again error
				So(func() { again = r.Run(context.Background()) }, ShouldNotPanic)
				So(errors.Is(again, ErrAlreadyRun), ShouldBeTrue)
			})
		})
	})

	Convey("Given a refresher whose cache falls back", t, func() {
		getter := &countingGetter{origin: scholar.OriginFallback}
		r := New(getter, WithInterval(time.Hour))

		Convey("When it runs", func() {
			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() { errCh <- r.Run(ctx) }()

			Convey("Then it should keep running after the warm-up call", func() {
				So(waitFor(func() bool { return getter.calls.Load() == 1 }), ShouldBeTrue)
				cancel()
				So(<-errCh, ShouldBeNil)
			})
		})
	})

	Convey("Given a refresher that was never started", t, func() {
		r := New(&countingGetter{}, WithInterval(0))

		Convey("When shutting down with an expired context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := r.Shutdown(ctx)

			Convey("Then it should time out", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(r.interval, ShouldEqual, DefaultInterval)
			})
		})
	})
}
