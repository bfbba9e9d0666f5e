package weather

// ConditionInfo is the classification of a WMO weather code.
type ConditionInfo struct {
	Condition   Condition `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

func info(c Condition, desc string) ConditionInfo {
	return ConditionInfo{Condition: c, Description: desc, Icon: string(c)}
}

// Mapping based on the WMO codes used by Open-Meteo. Read only through Classify.
var weatherCodes = map[int]ConditionInfo{
	0:  info(ConditionSunny, "Clear sky"),
	1:  info(ConditionSunny, "Mainly clear"),
	2:  info(ConditionPartlyCloudy, "Partly cloudy"),
	3:  info(ConditionCloudy, "Overcast"),
	45: info(ConditionCloudy, "Fog"),
	48: info(ConditionCloudy, "Depositing rime fog"),
	51: info(ConditionRainy, "Light drizzle"),
	53: info(ConditionRainy, "Moderate drizzle"),
	55: info(ConditionRainy, "Dense drizzle"),
	56: info(ConditionRainy, "Light freezing drizzle"),
	57: info(ConditionRainy, "Dense freezing drizzle"),
	61: info(ConditionRainy, "Slight rain"),
	63: info(ConditionRainy, "Moderate rain"),
	65: info(ConditionRainy, "Heavy rain"),
	66: info(ConditionRainy, "Light freezing rain"),
	67: info(ConditionRainy, "Heavy freezing rain"),
	71: info(ConditionSnowy, "Slight snow fall"),
	73: info(ConditionSnowy, "Moderate snow fall"),
	75: info(ConditionSnowy, "Heavy snow fall"),
	77: info(ConditionSnowy, "Snow grains"),
	80: info(ConditionRainy, "Slight rain showers"),
	81: info(ConditionRainy, "Moderate rain showers"),
	82: info(ConditionRainy, "Violent rain showers"),
	85: info(ConditionSnowy, "Slight snow showers"),
	86: info(ConditionSnowy, "Heavy snow showers"),
	95: info(ConditionRainy, "Thunderstorm"),
	96: info(ConditionRainy, "Thunderstorm with slight hail"),
	99: info(ConditionRainy, "Thunderstorm with heavy hail"),
}

var unknownCode = info(ConditionCloudy, "Unknown")

// Classify maps a weather code to its condition, description and icon.
// Codes missing from the table classify as cloudy / "Unknown".
func Classify(code int) ConditionInfo {
	if ci, ok := weatherCodes[code]; ok {
		return ci
	}
	return unknownCode
}
