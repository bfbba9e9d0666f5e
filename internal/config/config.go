package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-dashboard/internal/logger"
)

type AppConfig struct {
	Port string `validate:"required,numeric"`

	// Outbound Open-Meteo calls.
	GeocodingURL string        `validate:"required,url"`
	ForecastURL  string        `validate:"required,url"`
	HTTPTimeout  time.Duration `validate:"gt=0"`

	// Upstream resilience. A zero rate disables the limiter.
	UpstreamRPS        float64 `validate:"gte=0"`
	UpstreamBurst      int     `validate:"gte=1"`
	UpstreamMaxRetries int     `validate:"gte=0,lte=5"`

	// Preference store retention.
	RecentSearchesMax    int           `validate:"gte=1,lte=50"`
	RecentSearchesMaxAge time.Duration // 0 = unlimited
	PruneInterval        time.Duration // 0 = no prune job

	LogLevel  logrus.Level
	LogFormat string `validate:"oneof=text json"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debugf("no .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.GeocodingURL = getenvDefault("GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search")
	cfg.ForecastURL = getenvDefault("FORECAST_URL", "https://api.open-meteo.com/v1/forecast")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	rps, err := strconv.ParseFloat(getenvDefault("UPSTREAM_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_RPS: %w", err)
	}
	cfg.UpstreamRPS = rps
	cfg.UpstreamBurst = getenvInt("UPSTREAM_BURST", 5)
	// Each search makes exactly one geocoding and one forecast attempt by default.
	cfg.UpstreamMaxRetries = getenvInt("UPSTREAM_MAX_RETRIES", 0)

	cfg.RecentSearchesMax = getenvInt("RECENT_SEARCHES_MAX", 5)
	if cfg.RecentSearchesMaxAge, err = getenvDuration("RECENT_SEARCHES_MAX_AGE", "720h"); err != nil {
		return nil, err
	}
	if cfg.PruneInterval, err = getenvDuration("PRUNE_INTERVAL", "1h"); err != nil {
		return nil, err
	}

	cfg.LogLevel = logger.ParseLevel(getenvDefault("LOG_LEVEL", "info"))
	cfg.LogFormat = getenvDefault("LOG_FORMAT", "text")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
