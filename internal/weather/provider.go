package weather

import (
	"context"
)

// Geocoder resolves a free-text city name to a Location.
// It returns a *NotFoundError when nothing matches and a *TransientError
// when the lookup itself fails.
type Geocoder interface {
	Resolve(ctx context.Context, city string) (Location, error)
}

// ForecastSource fetches the combined current/hourly/daily payload for a
// resolved location.
type ForecastSource interface {
	Fetch(ctx context.Context, loc Location) (ForecastResponse, error)
}

// ForecastResponse is the raw forecast payload. Pointer fields distinguish an
// absent value from a zero reading.
type ForecastResponse struct {
	Current *CurrentBlock `json:"current"`
	Hourly  *HourlyBlock  `json:"hourly"`
	Daily   *DailyBlock   `json:"daily"`
}

type CurrentBlock struct {
	Temperature      *float64 `json:"temperature_2m"`
	RelativeHumidity *float64 `json:"relative_humidity_2m"`
	WeatherCode      *int     `json:"weather_code"`
	WindSpeed        *float64 `json:"wind_speed_10m"`
	Visibility       *float64 `json:"visibility"` // meters
	PressureMSL      *float64 `json:"pressure_msl"`
}

type HourlyBlock struct {
	Time             []string   `json:"time"`
	Temperature      []*float64 `json:"temperature_2m"`
	RelativeHumidity []*float64 `json:"relative_humidity_2m"`
	WindSpeed        []*float64 `json:"wind_speed_10m"`
	Precipitation    []*float64 `json:"precipitation"`
	WeatherCode      []*int     `json:"weather_code"`
}

type DailyBlock struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weather_code"`
	TemperatureMax   []*float64 `json:"temperature_2m_max"`
	TemperatureMin   []*float64 `json:"temperature_2m_min"`
	Sunrise          []string   `json:"sunrise"`
	Sunset           []string   `json:"sunset"`
	UVIndexMax       []*float64 `json:"uv_index_max"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	WindSpeedMax     []*float64 `json:"wind_speed_10m_max"`
}
