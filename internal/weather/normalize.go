package weather

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	maxHourlyPoints   = 24
	maxForecastDays   = 7
	defaultVisibility = 10 // km
)

var dayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var errMissingField = errors.New("missing required field")

// Normalize maps a forecast payload for loc into a WeatherData. It has no
// side effects and no dependency on the current time, so the same inputs
// always produce the same output. Any missing required data is reported as
// a *TransientError.
//
// Current, hourly and daily blocks are projected independently; an absent
// optional daily series never affects the current reading.
func Normalize(loc Location, resp ForecastResponse) (WeatherData, error) {
	data, err := normalizeCurrent(loc, resp.Current)
	if err != nil {
		return WeatherData{}, transient("normalize current", err)
	}

	hourly, err := normalizeHourly(resp.Hourly)
	if err != nil {
		return WeatherData{}, transient("normalize hourly", err)
	}
	data.HourlyData = hourly

	forecast, err := normalizeDaily(resp.Daily)
	if err != nil {
		return WeatherData{}, transient("normalize daily", err)
	}
	data.Forecast = forecast

	d := resp.Daily
	if v := at(d.UVIndexMax, 0); v != nil {
		uv := roundInt(*v)
		data.UVIndex = &uv
	}
	if len(d.Sunrise) > 0 {
		data.Sunrise = d.Sunrise[0]
	}
	if len(d.Sunset) > 0 {
		data.Sunset = d.Sunset[0]
	}

	return data, nil
}

func normalizeCurrent(loc Location, c *CurrentBlock) (WeatherData, error) {
	if c == nil {
		return WeatherData{}, fmt.Errorf("%w: current", errMissingField)
	}
	switch {
	case c.Temperature == nil:
		return WeatherData{}, fmt.Errorf("%w: current.temperature_2m", errMissingField)
	case c.RelativeHumidity == nil:
		return WeatherData{}, fmt.Errorf("%w: current.relative_humidity_2m", errMissingField)
	case c.WeatherCode == nil:
		return WeatherData{}, fmt.Errorf("%w: current.weather_code", errMissingField)
	case c.WindSpeed == nil:
		return WeatherData{}, fmt.Errorf("%w: current.wind_speed_10m", errMissingField)
	}

	ci := Classify(*c.WeatherCode)

	visibility := defaultVisibility
	if c.Visibility != nil {
		visibility = roundInt(*c.Visibility / 1000)
	}

	var pressure *int
	if c.PressureMSL != nil {
		p := roundInt(*c.PressureMSL)
		pressure = &p
	}

	return WeatherData{
		City:        loc.Name,
		Country:     loc.Country,
		Temperature: roundInt(*c.Temperature),
		Condition:   ci.Condition,
		Humidity:    roundInt(*c.RelativeHumidity),
		WindSpeed:   roundInt(*c.WindSpeed),
		Visibility:  visibility,
		Description: ci.Description,
		Icon:        ci.Icon,
		Pressure:    pressure,
	}, nil
}

func normalizeHourly(h *HourlyBlock) ([]HourlyPoint, error) {
	if h == nil || h.Time == nil {
		return nil, fmt.Errorf("%w: hourly.time", errMissingField)
	}

	n := min(maxHourlyPoints, len(h.Time))
	points := make([]HourlyPoint, 0, n)
	for i := 0; i < n; i++ {
		temp, err := required(h.Temperature, i, "hourly.temperature_2m")
		if err != nil {
			return nil, err
		}
		humidity, err := required(h.RelativeHumidity, i, "hourly.relative_humidity_2m")
		if err != nil {
			return nil, err
		}
		wind, err := required(h.WindSpeed, i, "hourly.wind_speed_10m")
		if err != nil {
			return nil, err
		}
		code, err := required(h.WeatherCode, i, "hourly.weather_code")
		if err != nil {
			return nil, err
		}

		var precip float64
		if v := at(h.Precipitation, i); v != nil {
			precip = *v
		}

		points = append(points, HourlyPoint{
			Time:          h.Time[i],
			Temperature:   roundInt(temp),
			Humidity:      roundInt(humidity),
			WindSpeed:     roundInt(wind),
			Precipitation: precip,
			WeatherCode:   code,
		})
	}
	return points, nil
}

func normalizeDaily(d *DailyBlock) ([]ForecastDay, error) {
	if d == nil || d.Time == nil {
		return nil, fmt.Errorf("%w: daily.time", errMissingField)
	}

	n := min(maxForecastDays, len(d.Time))
	days := make([]ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		date, err := time.Parse(time.DateOnly, d.Time[i])
		if err != nil {
			return nil, fmt.Errorf("daily.time[%d]: %w", i, err)
		}
		code, err := required(d.WeatherCode, i, "daily.weather_code")
		if err != nil {
			return nil, err
		}
		maxTemp, err := required(d.TemperatureMax, i, "daily.temperature_2m_max")
		if err != nil {
			return nil, err
		}
		minTemp, err := required(d.TemperatureMin, i, "daily.temperature_2m_min")
		if err != nil {
			return nil, err
		}

		ci := Classify(code)
		lo := roundInt(minTemp)

		var precip float64
		if v := at(d.PrecipitationSum, i); v != nil {
			precip = *v
		}

		var wind *int
		if v := at(d.WindSpeedMax, i); v != nil {
			w := roundInt(*v)
			wind = &w
		}

		days = append(days, ForecastDay{
			Date:           d.Time[i],
			DayName:        dayNames[date.Weekday()],
			Temperature:    roundInt(maxTemp),
			MinTemperature: &lo,
			Condition:      ci.Condition,
			Icon:           ci.Icon,
			Precipitation:  &precip,
			WindSpeed:      wind,
		})
	}
	return days, nil
}

// roundInt rounds to the nearest integer with halves going up (-2.5 -> -2).
func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}

func at[T any](series []*T, i int) *T {
	if i < len(series) {
		return series[i]
	}
	return nil
}

func required[T any](series []*T, i int, name string) (T, error) {
	v := at(series, i)
	if v == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s[%d]", errMissingField, name, i)
	}
	return *v, nil
}
