package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment.
type Config struct {
	Port               string
	ValidateVehicle    bool
	InsurerAliasesFile string
	BatchWorkers       int
	MaxBatchSize       int
	LogLevel           slog.Level

	// RateLimitRPS caps accepted /v1 requests per second; 0 disables it.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from environment variables, seeding them
// from a .env file in the working directory when one exists.
func Load() (*Config, error) {
	// a missing .env file is fine, real env vars take precedence
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		InsurerAliasesFile: os.Getenv("INSURER_ALIASES_FILE"),
	}

	var err error
	if cfg.ValidateVehicle, err = getBool("VALIDATE_VEHICLE", true); err != nil {
		return nil, err
	}
	if cfg.BatchWorkers, err = getPositiveInt("BATCH_WORKERS", 4); err != nil {
		return nil, err
	}
	if cfg.MaxBatchSize, err = getPositiveInt("MAX_BATCH_SIZE", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getNonNegativeFloat("RATE_LIMIT_RPS", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getPositiveInt("RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = parseLevel(getEnvOrDefault("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q: %w", key, v, err)
	}
	return b, nil
}

func getPositiveInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, v, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s: must be at least 1, got %d", key, n)
	}
	return n, nil
}

func getNonNegativeFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", key, v, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %g", key, f)
	}
	return f, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: unknown level %q", s)
}
