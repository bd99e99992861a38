// Package config loads server and CLI settings.
//
// Values are resolved in order: built-in defaults, then an optional TOML file,
// then a .env file, then environment variables. Later sources win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/mmynk/budgetwise/pkg/logging"
)

// Environment variables read by Load.
const (
	EnvConfigPath    = "BUDGET_CONFIG"
	EnvPort          = "PORT"
	EnvDBPath        = "DB_PATH"
	EnvLogLevel      = "LOG_LEVEL"
	EnvDailyBudget   = "DAILY_BUDGET"
	EnvTrendDays     = "TREND_DAYS"
	EnvBreakdownDays = "BREAKDOWN_DAYS"
)

// Config holds all budget tracker configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Storage   StorageConfig   `toml:"storage"`
	Logging   LoggingConfig   `toml:"logging"`
	Analytics AnalyticsConfig `toml:"analytics"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// AnalyticsConfig holds defaults for analytics requests that omit them.
type AnalyticsConfig struct {
	DailyBudget   float64 `toml:"daily_budget"`
	TrendDays     int     `toml:"trend_days"`
	BreakdownDays int     `toml:"breakdown_days"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server:  ServerConfig{Port: 8080},
		Storage: StorageConfig{DBPath: "./data/budget.db"},
		Logging: LoggingConfig{Level: "info"},
		Analytics: AnalyticsConfig{
			DailyBudget:   50,
			TrendDays:     14,
			BreakdownDays: 30,
		},
	}
}

// Load resolves the configuration. path names a TOML file; when empty,
// BUDGET_CONFIG is consulted, and with neither set no file is read.
// envFiles are dotenv files to load (default ".env"); missing ones are skipped.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading env file: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides cfg from non-empty environment variables.
func applyEnv(cfg *Config) error {
	var errs []error

	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvPort, err))
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvDailyBudget); v != "" {
		budget, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDailyBudget, err))
		}
		cfg.Analytics.DailyBudget = budget
	}
	if v := os.Getenv(EnvTrendDays); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTrendDays, err))
		}
		cfg.Analytics.TrendDays = days
	}
	if v := os.Getenv(EnvBreakdownDays); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvBreakdownDays, err))
		}
		cfg.Analytics.BreakdownDays = days
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %w", errors.Join(errs...))
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Storage.DBPath == "" {
		errs = append(errs, errors.New("storage.db_path must not be empty"))
	}
	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	if c.Analytics.DailyBudget < 0 {
		errs = append(errs, fmt.Errorf("analytics.daily_budget must not be negative, got %v", c.Analytics.DailyBudget))
	}
	if c.Analytics.TrendDays < 0 {
		errs = append(errs, fmt.Errorf("analytics.trend_days must not be negative, got %d", c.Analytics.TrendDays))
	}
	if c.Analytics.BreakdownDays < 0 {
		errs = append(errs, fmt.Errorf("analytics.breakdown_days must not be negative, got %d", c.Analytics.BreakdownDays))
	}

	return errors.Join(errs...)
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
