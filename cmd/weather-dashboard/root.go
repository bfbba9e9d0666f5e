package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/logger"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "weather-dashboard",
	Short: "City weather lookup backed by Open-Meteo",
	Long: `Resolves a city name to coordinates, fetches current, hourly and 7-day
weather from Open-Meteo and returns one normalized view. When the live API is
unreachable a fixed table of well-known cities is used instead.

Configuration is read from the environment (and an optional .env file).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		logger.Init(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})
		return nil
	},
}

var cfg *config.AppConfig

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newWeatherService wires the Open-Meteo providers into a weather.Service.
func newWeatherService(cfg *config.AppConfig) *weather.Service {
	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// One limiter across both upstreams; they share the same host family.
	var limiter *rate.Limiter
	if cfg.UpstreamRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.UpstreamRPS), cfg.UpstreamBurst)
	}

	geocoder := providers.NewGeocodingProvider(httpClient, providers.Options{
		BaseURL:    cfg.GeocodingURL,
		MaxRetries: cfg.UpstreamMaxRetries,
		Limiter:    limiter,
	})
	forecasts := providers.NewOpenMeteoProvider(httpClient, providers.Options{
		BaseURL:    cfg.ForecastURL,
		MaxRetries: cfg.UpstreamMaxRetries,
		Limiter:    limiter,
	})

	return weather.NewService(geocoder, forecasts)
}
