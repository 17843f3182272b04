package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/sheetview/internal/source"
)

type Config struct {
	Port string

	// Outbound CSV fetch
	FetchTimeout time.Duration
	MaxCSVBytes  int64
	FetchRate    float64
	FetchBurst   int
	UserAgent    string

	// Fetch latency stats
	StatsWindow time.Duration

	// Launch URLs
	LaunchBase string

	// Terminal renderer
	RenderReadyTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		FetchTimeout: envDuration("FETCH_TIMEOUT", 30*time.Second),
		MaxCSVBytes:  envInt64("MAX_CSV_BYTES", 10485760), // 10MB
		FetchRate:    envFloat("FETCH_RATE", 5),
		FetchBurst:   envInt("FETCH_BURST", 10),
		UserAgent:    envOr("USER_AGENT", "sheetview/1.0"),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		LaunchBase: envOr("LAUNCH_BASE", "tools/"),

		RenderReadyTimeout: envDuration("RENDER_READY_TIMEOUT", 3*time.Second),
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.MaxCSVBytes <= 0 {
		cfg.MaxCSVBytes = 10485760
	}
	if cfg.FetchRate <= 0 {
		cfg.FetchRate = 5
	}
	if cfg.FetchBurst <= 0 {
		cfg.FetchBurst = 10
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}
	if cfg.RenderReadyTimeout <= 0 {
		cfg.RenderReadyTimeout = 3 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	if c.MaxCSVBytes < 1024 {
		return fmt.Errorf("MAX_CSV_BYTES must be at least 1024, got %d", c.MaxCSVBytes)
	}
	return nil
}

// SourceOptions returns the fetch client settings.
func (c Config) SourceOptions() source.Options {
	return source.Options{
		Timeout:     c.FetchTimeout,
		MaxBytes:    c.MaxCSVBytes,
		Rate:        c.FetchRate,
		Burst:       c.FetchBurst,
		UserAgent:   c.UserAgent,
		StatsWindow: c.StatsWindow,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
