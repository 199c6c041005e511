package refresh

import (
	"time"

	"github.com/okian/scholarfolio/pkg/logger"
)

// Option applies a configuration option to the Refresher.
type Option func(*Refresher)

// WithInterval sets the time between refreshes.
func WithInterval(d time.Duration) Option {
	return func(r *Refresher) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithName sets the refresher name for identification and logging.
func WithName(name string) Option {
	return func(r *Refresher) {
		if name != "" {
			r.name = name
		}
	}
}

// WithLogger sets a custom logger for the refresher.
func WithLogger(l logger.Logger) Option {
	return func(r *Refresher) {
		if l != nil {
			r.logger = l
		}
	}
}
