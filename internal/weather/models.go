package weather

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionSunny        Condition = "sunny"
	ConditionPartlyCloudy Condition = "partly-cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionSnowy        Condition = "snowy"
)

// Location is a geocoded place. It is produced by a Geocoder from the first
// match and consumed by the forecast fetch of the same search.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HourlyPoint is one hour of the next-24h series.
type HourlyPoint struct {
	Time          string  `json:"time"`
	Temperature   int     `json:"temperature"`
	Humidity      int     `json:"humidity"`
	WindSpeed     int     `json:"windSpeed"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weatherCode"`
}

// ForecastDay is one day of the 7-day forecast. Index 0 is today.
type ForecastDay struct {
	Date           string    `json:"date"`
	DayName        string    `json:"dayName"`
	Temperature    int       `json:"temperature"` // daily max, °C
	MinTemperature *int      `json:"minTemperature,omitempty"`
	Condition      Condition `json:"condition"`
	Icon           string    `json:"icon"`
	Precipitation  *float64  `json:"precipitation,omitempty"`
	WindSpeed      *int      `json:"windSpeed,omitempty"`
	Humidity       *int      `json:"humidity,omitempty"`
}

// WeatherData is the view model returned for a single city search.
// Temperatures are °C, wind km/h, visibility km, pressure hPa.
type WeatherData struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Temperature int       `json:"temperature"`
	Condition   Condition `json:"condition"`
	Humidity    int       `json:"humidity"`
	WindSpeed   int       `json:"windSpeed"`
	Visibility  int       `json:"visibility"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`

	Forecast   []ForecastDay `json:"forecast,omitempty"`
	HourlyData []HourlyPoint `json:"hourlyData,omitempty"`

	UVIndex  *int   `json:"uvIndex,omitempty"`
	Pressure *int   `json:"pressure,omitempty"`
	Sunrise  string `json:"sunrise,omitempty"`
	Sunset   string `json:"sunset,omitempty"`
}
