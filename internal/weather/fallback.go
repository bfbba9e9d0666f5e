package weather

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type fallbackEntry struct {
	temp        int
	condition   Condition
	humidity    int
	wind        int
	visibility  int
	country     string
	description string
}

// Typical mid-summer readings, keyed by lowercase city name.
var fallbackCities = map[string]fallbackEntry{
	"mumbai":    {29, ConditionRainy, 85, 12, 8, "IN", "Monsoon showers"},
	"patna":     {33, ConditionRainy, 80, 8, 9, "IN", "Monsoon season"},
	"delhi":     {36, ConditionCloudy, 75, 10, 8, "IN", "Hot and humid"},
	"kolkata":   {32, ConditionRainy, 88, 15, 7, "IN", "Heavy monsoon"},
	"chennai":   {34, ConditionSunny, 78, 14, 12, "IN", "Hot coastal weather"},
	"bangalore": {25, ConditionCloudy, 68, 8, 15, "IN", "Pleasant weather"},

	"san francisco": {18, ConditionCloudy, 75, 20, 12, "US", "Cool and foggy"},
	"new york":      {29, ConditionSunny, 65, 12, 15, "US", "Warm summer day"},
	"los angeles":   {27, ConditionSunny, 58, 8, 16, "US", "Perfect California weather"},
	"chicago":       {26, ConditionCloudy, 68, 15, 12, "US", "Mild summer weather"},

	"london": {23, ConditionCloudy, 72, 12, 10, "GB", "Typical London summer"},
	"paris":  {26, ConditionSunny, 58, 8, 14, "FR", "Beautiful summer day"},
	"berlin": {24, ConditionCloudy, 62, 10, 12, "DE", "Mild summer weather"},
	"rome":   {31, ConditionSunny, 55, 6, 16, "IT", "Hot Mediterranean summer"},

	"tokyo":     {32, ConditionSunny, 72, 8, 12, "JP", "Hot humid summer"},
	"singapore": {33, ConditionRainy, 85, 10, 8, "SG", "Tropical afternoon rain"},
	"bangkok":   {35, ConditionSunny, 78, 5, 10, "TH", "Very hot and humid"},

	"sydney": {17, ConditionSunny, 58, 15, 16, "AU", "Cool winter day"},
	"dubai":  {43, ConditionSunny, 42, 12, 15, "AE", "Extremely hot"},
	"moscow": {21, ConditionCloudy, 62, 8, 12, "RU", "Cool summer day"},
}

var (
	forecastDeltas = [maxForecastDays]int{0, -2, 1, -1, 2, 0, 1}
	// Index 0 is replaced by the city's own condition.
	forecastCycle = [maxForecastDays]Condition{
		"", ConditionCloudy, ConditionSunny, ConditionCloudy,
		ConditionSunny, ConditionCloudy, ConditionSunny,
	}
)

const (
	minFallbackTemp = 5
	maxFallbackTemp = 45
)

// Fallback builds a WeatherData for city from the static table. The synthetic
// forecast starts at now's UTC calendar date. Cities missing from the table fail
// with a *NotFoundError rather than receiving generic data.
func Fallback(city string, now time.Time) (WeatherData, error) {
	name := strings.TrimSpace(city)
	entry, ok := fallbackCities[strings.ToLower(name)]
	if !ok {
		return WeatherData{}, &NotFoundError{City: city}
	}

	return WeatherData{
		City:        displayName(name),
		Country:     entry.country,
		Temperature: entry.temp,
		Condition:   entry.condition,
		Humidity:    entry.humidity,
		WindSpeed:   entry.wind,
		Visibility:  entry.visibility,
		Description: entry.description,
		Icon:        string(entry.condition),
		Forecast:    syntheticForecast(entry.temp, entry.condition, now),
	}, nil
}

func syntheticForecast(base int, cond Condition, now time.Time) []ForecastDay {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := make([]ForecastDay, 0, maxForecastDays)
	for i, delta := range forecastDeltas {
		c := forecastCycle[i]
		if i == 0 {
			c = cond
		}
		date := start.AddDate(0, 0, i)
		days = append(days, ForecastDay{
			Date:        date.Format(time.DateOnly),
			DayName:     dayNames[date.Weekday()],
			Temperature: clamp(base+delta, minFallbackTemp, maxFallbackTemp),
			Condition:   c,
			Icon:        string(c),
		})
	}
	return days
}

// displayName upper-cases the first letter of every word and keeps the rest.
func displayName(city string) string {
	return cases.Title(language.English, cases.NoLower).String(city)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
