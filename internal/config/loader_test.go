package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/scholarfolio/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.StoreDriver, convey.ShouldEqual, config.DriverFile)
				convey.So(cfg.FetchDelayMS, convey.ShouldEqual, 1000)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("PORTFOLIO_ADDR", ":9090")
			_ = os.Setenv("PORTFOLIO_STORE_DRIVER", "sqlite")
			_ = os.Setenv("PORTFOLIO_STORE_PATH", "/tmp/metrics.db")
			_ = os.Setenv("PORTFOLIO_FETCH_DELAY_MS", "250")
			_ = os.Setenv("PORTFOLIO_ADMIN_ENABLED", "true")
			_ = os.Setenv("PORTFOLIO_TIMEZONE", "UTC")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.StoreDriver, convey.ShouldEqual, config.DriverSQLite)
				convey.So(cfg.StorePath, convey.ShouldEqual, "/tmp/metrics.db")
				convey.So(cfg.FetchDelayMS, convey.ShouldEqual, 250)
				convey.So(cfg.AdminEnabled, convey.ShouldBeTrue)
				convey.So(cfg.Timezone, convey.ShouldEqual, "UTC")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			tmpFile := createTempConfigFile(`
# local development
addr: ":7000"
store_driver: memory
assets_dir: ./assets
refresh_interval_s: 0
`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("PORTFOLIO_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge file values over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7000")
				convey.So(cfg.StoreDriver, convey.ShouldEqual, config.DriverMemory)
				convey.So(cfg.AssetsDir, convey.ShouldEqual, "./assets")
				convey.So(cfg.RefreshIntervalS, convey.ShouldEqual, 0)
				convey.So(cfg.FetchDelayMS, convey.ShouldEqual, 1000)
			})
		})

		convey.Convey("When both file and environment variables are set", func() {
			tmpFile := createTempConfigFile(`
addr: ":7000"
log_level: debug
`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("PORTFOLIO_CONFIG", tmpFile)
			_ = os.Setenv("PORTFOLIO_ADDR", ":7001")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7001")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("PORTFOLIO_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("PORTFOLIO_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("PORTFOLIO_FETCH_DELAY_MS", "soon")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigValidation(t *testing.T) {
	convey.Convey("Given config validation", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		cases := []struct {
			name string
			key  string
			val  string
			msg  string
		}{
			{"empty addr", "PORTFOLIO_ADDR", "", "addr must not be empty"},
			{"unknown driver", "PORTFOLIO_STORE_DRIVER", "redis", "unknown store_driver"},
			{"negative delay", "PORTFOLIO_FETCH_DELAY_MS", "-1", "fetch_delay_ms"},
			{"delay past the write timeout", "PORTFOLIO_FETCH_DELAY_MS", "60000", "fetch_delay_ms must not exceed"},
			{"negative refresh", "PORTFOLIO_REFRESH_INTERVAL_S", "-5", "refresh_interval_s"},
			{"bad timezone", "PORTFOLIO_TIMEZONE", "Mars/Olympus_Mons", "timezone"},
		}

		for _, tc := range cases {
			convey.Convey("When the config has "+tc.name, func() {
				_ = os.Setenv(tc.key, tc.val)

				cfg, err := config.Load(ctx)

				convey.Convey("Then it should return a validation error", func() {
					convey.So(cfg, convey.ShouldBeNil)
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
					convey.So(err.Error(), convey.ShouldContainSubstring, tc.msg)
				})
			})
		}

		convey.Convey("When a file-backed driver has no path", func() {
			cfg := config.New()
			cfg.StoreDriver = config.DriverSQLite
			cfg.StorePath = " "

			convey.Convey("Then validation should fail", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the memory driver has no path", func() {
			cfg := config.New()
			cfg.StoreDriver = config.DriverMemory
			cfg.StorePath = ""

			convey.Convey("Then validation should pass", func() {
				convey.So(cfg.Validate(), convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	envVars := []string{
		"PORTFOLIO_CONFIG",
		"PORTFOLIO_ADDR",
		"PORTFOLIO_LOG_LEVEL",
		"PORTFOLIO_STORE_DRIVER",
		"PORTFOLIO_STORE_PATH",
		"PORTFOLIO_ASSETS_DIR",
		"PORTFOLIO_FETCH_DELAY_MS",
		"PORTFOLIO_REFRESH_INTERVAL_S",
		"PORTFOLIO_ADMIN_ENABLED",
		"PORTFOLIO_TIMEZONE",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "portfolio-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	if err := tmpFile.Close(); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}
