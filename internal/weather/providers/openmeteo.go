package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

var (
	currentFields = []string{
		"temperature_2m", "relative_humidity_2m", "weather_code",
		"wind_speed_10m", "visibility", "pressure_msl",
	}
	hourlyFields = []string{
		"temperature_2m", "relative_humidity_2m", "wind_speed_10m",
		"precipitation", "weather_code",
	}
	dailyFields = []string{
		"weather_code", "temperature_2m_max", "temperature_2m_min",
		"sunrise", "sunset", "uv_index_max", "precipitation_sum",
		"wind_speed_10m_max",
	}
)

// OpenMeteoProvider implements weather.ForecastSource for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	up      *upstream
}

func NewOpenMeteoProvider(client *http.Client, opts Options) *OpenMeteoProvider {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultForecastURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		up:      newUpstream("openmeteo", client, opts),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// Fetch issues one combined current + 24h hourly + 7-day daily request in the
// location's own time zone.
func (p *OpenMeteoProvider) Fetch(ctx context.Context, loc weather.Location) (weather.ForecastResponse, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	values.Set("current", strings.Join(currentFields, ","))
	values.Set("hourly", strings.Join(hourlyFields, ","))
	values.Set("daily", strings.Join(dailyFields, ","))
	values.Set("timezone", "auto")
	values.Set("forecast_days", "7")
	values.Set("forecast_hours", "24")

	resp, err := p.up.get(ctx, p.baseURL+"?"+values.Encode())
	if err != nil {
		return weather.ForecastResponse{}, &weather.TransientError{Op: "forecast request", Err: err}
	}
	defer resp.Body.Close()

	var payload weather.ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.ForecastResponse{}, &weather.TransientError{Op: "decode forecast response", Err: err}
	}

	return payload, nil
}
