package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/scholarfolio/internal/adapters/http/api"
	"github.com/okian/scholarfolio/internal/adapters/http/site"
	"github.com/okian/scholarfolio/internal/adapters/http/swagger"
	"github.com/okian/scholarfolio/internal/adapters/refresh"
	app "github.com/okian/scholarfolio/internal/app"
	"github.com/okian/scholarfolio/internal/config"
	"github.com/okian/scholarfolio/pkg/logger"
	"github.com/okian/scholarfolio/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		logger.Get().Error(context.Background(), "portfolio server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	loggerInstance := logger.Get()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("resolve timezone: %w", err)
	}

	svc := app.New(
		app.WithLogger(loggerInstance.Named("service")),
		app.WithStore(cfg.StoreDriver, cfg.StorePath),
		app.WithFetchDelay(cfg.FetchDelay()),
		app.WithLocation(loc),
	)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	defer svc.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newMux(ctx, cfg, svc, loggerInstance),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		startSystemMetricsUpdater(gctx)
		return nil
	})

	if interval := cfg.RefreshInterval(); interval > 0 {
		refresher := refresh.New(svc,
			refresh.WithInterval(interval),
			refresh.WithLogger(loggerInstance),
		)
		g.Go(func() error { return refresher.Run(gctx) })
	}

	g.Go(func() error {
		loggerInstance.Info(gctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.Bool("adminEnabled", cfg.AdminEnabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		// Wait for shutdown signal or a failed sibling
		<-gctx.Done()
		loggerInstance.Info(context.Background(), "shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		loggerInstance.Info(context.Background(), "server stopped")
		return nil
	})

	return g.Wait()
}

// newMux registers the docs, the JSON API and the page.
func newMux(ctx context.Context, cfg *config.Config, svc *app.Service, l logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	swagger.Register(ctx, mux)

	apiServer := api.NewServer(svc, svc, cfg.AdminEnabled)
	apiServer.Register(ctx, mux)

	page := site.NewHandler(svc, cfg.AssetsDir, site.WithLogger(l.Named("site")))
	page.Register(ctx, mux)

	return mux
}

// startSystemMetricsUpdater updates system metrics until ctx is canceled.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)

	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		// Calculate average GC pause time
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
