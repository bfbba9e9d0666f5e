package config

import (
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

var envKeys = []string{
	"PORT", "GEOCODING_URL", "FORECAST_URL", "HTTP_TIMEOUT",
	"UPSTREAM_RPS", "UPSTREAM_BURST", "UPSTREAM_MAX_RETRIES",
	"RECENT_SEARCHES_MAX", "RECENT_SEARCHES_MAX_AGE", "PRUNE_INTERVAL",
	"LOG_LEVEL", "LOG_FORMAT",
}

// cleanEnv isolates Load from the host environment and any .env file.
func cleanEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.GeocodingURL != "https://geocoding-api.open-meteo.com/v1/search" ||
		cfg.ForecastURL != "https://api.open-meteo.com/v1/forecast" {
		t.Fatalf("unexpected upstream URLs: %q %q", cfg.GeocodingURL, cfg.ForecastURL)
	}
	if cfg.UpstreamMaxRetries != 0 {
		t.Fatalf("searches must not retry by default, got %d", cfg.UpstreamMaxRetries)
	}
	if cfg.RecentSearchesMax != 5 || cfg.LogLevel != logrus.InfoLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	cleanEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_RPS", "0")
	t.Setenv("RECENT_SEARCHES_MAX", "10")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.HTTPTimeout != 3*time.Second || cfg.UpstreamRPS != 0 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.RecentSearchesMax != 10 || cfg.LogLevel != logrus.DebugLevel || cfg.LogFormat != "json" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"HTTP_TIMEOUT":         "soon",
		"UPSTREAM_RPS":         "fast",
		"FORECAST_URL":         "not a url",
		"UPSTREAM_MAX_RETRIES": "9",
		"LOG_FORMAT":           "xml",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			cleanEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}
