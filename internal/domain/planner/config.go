package planner

import (
	"time"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

// Config holds runtime knobs for the planner service.
type Config struct {
	SuggestionLimit int
	TimelineHours   int
	GeocodeLimit    int
	EventsLimit     int
	DefaultLocation weather.Coordinates
	WeatherTTL      time.Duration
	ForecastTTL     time.Duration
	AirQualityTTL   time.Duration
	GeocodeTTL      time.Duration
}

func (c Config) withDefaults() Config {
	if c.SuggestionLimit <= 0 {
		c.SuggestionLimit = 12
	}
	if c.TimelineHours <= 0 {
		c.TimelineHours = 8
	}
	if c.GeocodeLimit <= 0 {
		c.GeocodeLimit = 5
	}
	if c.EventsLimit <= 0 {
		c.EventsLimit = 10
	}
	if c.WeatherTTL <= 0 {
		c.WeatherTTL = 5 * time.Minute
	}
	if c.ForecastTTL <= 0 {
		c.ForecastTTL = 10 * time.Minute
	}
	if c.AirQualityTTL <= 0 {
		c.AirQualityTTL = 30 * time.Minute
	}
	if c.GeocodeTTL <= 0 {
		c.GeocodeTTL = 24 * time.Hour
	}
	return c
}
