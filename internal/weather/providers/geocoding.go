package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// GeocodingProvider implements weather.Geocoder with the Open-Meteo geocoding API.
type GeocodingProvider struct {
	name    string
	baseURL string
	up      *upstream
}

func NewGeocodingProvider(client *http.Client, opts Options) *GeocodingProvider {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultGeocodingURL
	}
	return &GeocodingProvider{
		name:    "openmeteo-geocoding",
		baseURL: baseURL,
		up:      newUpstream("openmeteo-geocoding", client, opts),
	}
}

func (p *GeocodingProvider) Name() string {
	return p.name
}

// Resolve looks up city and returns the first match. Disambiguation and
// input normalization are left to the geocoding service.
func (p *GeocodingProvider) Resolve(ctx context.Context, city string) (weather.Location, error) {
	values := url.Values{}
	values.Set("name", city)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	resp, err := p.up.get(ctx, p.baseURL+"?"+values.Encode())
	if err != nil {
		return weather.Location{}, &weather.TransientError{Op: "geocoding request", Err: err}
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Location{}, &weather.TransientError{Op: "decode geocoding response", Err: err}
	}

	if len(payload.Results) == 0 {
		return weather.Location{}, &weather.NotFoundError{City: city}
	}

	first := payload.Results[0]
	return weather.Location{
		Name:      first.Name,
		Country:   first.Country,
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
	}, nil
}
