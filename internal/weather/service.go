package weather

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-dashboard/internal/logger"
)

// Service resolves a city and returns its normalized weather, falling back to
// the static table when the live source fails.
type Service struct {
	geocoder  Geocoder
	forecasts ForecastSource
	now       func() time.Time
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, forecasts ForecastSource) *Service {
	return &Service{
		geocoder:  geocoder,
		forecasts: forecasts,
		now:       time.Now,
	}
}

// WithClock overrides the clock used to date the fallback forecast.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetWeatherData performs one search: geocode, then fetch and normalize.
// A *NotFoundError from geocoding is returned as is. Every other failure is
// absorbed into Fallback, which can itself return a *NotFoundError.
func (s *Service) GetWeatherData(ctx context.Context, city string) (WeatherData, error) {
	log := logger.Log.WithField("city", city)

	loc, err := s.geocoder.Resolve(ctx, city)
	if err != nil {
		if IsNotFound(err) {
			log.Info("city not found by geocoder")
			return WeatherData{}, err
		}
		log.WithError(err).Warn("geocoding failed; using fallback data")
		return s.fallback(log, city)
	}

	log = log.WithFields(logrus.Fields{
		"location": loc.Name,
		"country":  loc.Country,
	})
	return s.normalize(ctx, log, loc, city)
}

// normalize never fails on its own; partial results are discarded and the
// raw city input keys the fallback.
func (s *Service) normalize(ctx context.Context, log *logrus.Entry, loc Location, city string) (WeatherData, error) {
	resp, err := s.forecasts.Fetch(ctx, loc)
	if err != nil {
		log.WithError(err).Warn("forecast fetch failed; using fallback data")
		return s.fallback(log, city)
	}

	data, err := Normalize(loc, resp)
	if err != nil {
		log.WithError(err).Warn("forecast payload rejected; using fallback data")
		return s.fallback(log, city)
	}

	log.WithFields(logrus.Fields{
		"source":      "live",
		"temperature": data.Temperature,
		"condition":   data.Condition,
	}).Info("weather resolved")
	return data, nil
}

func (s *Service) fallback(log *logrus.Entry, city string) (WeatherData, error) {
	data, err := Fallback(city, s.now())
	if err != nil {
		log.Info("city missing from fallback table")
		return WeatherData{}, err
	}
	log.WithField("source", "fallback").Info("weather resolved")
	return data, nil
}
