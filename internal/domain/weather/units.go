package weather

import (
	"fmt"
	"math"
)

// FormatTemperature renders a Celsius value in the requested unit ("C" or "F").
func FormatTemperature(celsius float64, unit string) string {
	if unit == "F" {
		return fmt.Sprintf("%d°F", int(math.Round(celsius*9/5+32)))
	}
	return fmt.Sprintf("%d°C", int(math.Round(celsius)))
}

// WindDescription maps a m/s wind speed to its Beaufort-style label.
func WindDescription(speedMS float64) string {
	kmh := speedMS * 3.6
	switch {
	case kmh < 1:
		return "Calm"
	case kmh < 6:
		return "Light air"
	case kmh < 12:
		return "Light breeze"
	case kmh < 20:
		return "Gentle breeze"
	case kmh < 29:
		return "Moderate breeze"
	case kmh < 39:
		return "Fresh breeze"
	case kmh < 50:
		return "Strong breeze"
	case kmh < 62:
		return "Near gale"
	case kmh < 75:
		return "Gale"
	case kmh < 89:
		return "Strong gale"
	default:
		return "Storm"
	}
}

// UVIndexLevel labels a UV index value.
func UVIndexLevel(uv float64) string {
	switch {
	case uv <= 2:
		return "Low"
	case uv <= 5:
		return "Moderate"
	case uv <= 7:
		return "High"
	case uv <= 10:
		return "Very High"
	default:
		return "Extreme"
	}
}

var aqiLabels = [...]string{"Good", "Fair", "Moderate", "Poor", "Very Poor"}

var aqiRecommendations = [...]string{
	"Air quality is excellent. Great for outdoor activities!",
	"Air quality is acceptable. Sensitive groups should limit prolonged outdoor exposure.",
	"Some pollutants may affect sensitive groups. Consider reducing intense outdoor activities.",
	"Health effects possible for everyone. Limit outdoor activities.",
	"Health alert! Avoid outdoor activities.",
}

// AQILabel names a 1-5 AQI value; out of range values read as Good.
func AQILabel(aqi int) string {
	if aqi < 1 || aqi > len(aqiLabels) {
		return aqiLabels[0]
	}
	return aqiLabels[aqi-1]
}

// AQIRecommendation returns the activity advice for a 1-5 AQI value.
func AQIRecommendation(aqi int) string {
	if aqi < 1 || aqi > len(aqiRecommendations) {
		return aqiRecommendations[0]
	}
	return aqiRecommendations[aqi-1]
}
