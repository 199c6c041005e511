// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New returns a Config populated with defaults.
// - Load layers defaults, an optional YAML file and PORTFOLIO_* env vars.
// - Errors returned from Load wrap ErrLoadConfig or ErrInvalidConfig.
package config

// MaxFetchDelayMS keeps a blocking /api/metrics read under the server's
// write timeout.
const MaxFetchDelayMS = 5000

// Store drivers understood by the key-value adapter.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StoreDriver selects the key-value backend: memory, file or sqlite.
	StoreDriver string `koanf:"store_driver"`

	// StorePath is the file or database path for the file and sqlite drivers.
	StorePath string `koanf:"store_path"`

	// AssetsDir holds downloadable documents, images and code samples.
	AssetsDir string `koanf:"assets_dir"`

	// FetchDelayMS is the artificial delay of the metrics source, at most
	// MaxFetchDelayMS.
	FetchDelayMS int `koanf:"fetch_delay_ms"`

	// RefreshIntervalS is how often the background refresher warms the cache.
	// Zero disables the refresher.
	RefreshIntervalS int `koanf:"refresh_interval_s"`

	// AdminEnabled exposes PUT /api/metrics for manual corrections.
	AdminEnabled bool `koanf:"admin_enabled"`

	// Timezone names the location used for calendar-day comparisons.
	// Empty means the process local zone.
	Timezone string `koanf:"timezone"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8080",
		StoreDriver:      DriverFile,
		StorePath:        "data/scholar-metrics.json",
		AssetsDir:        "public",
		FetchDelayMS:     1000,
		RefreshIntervalS: 3600,
		AdminEnabled:     false,
		Timezone:         "",
	}
}
