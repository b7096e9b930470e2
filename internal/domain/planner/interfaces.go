package planner

import (
	"context"
	"time"

	"github.com/yanqian/weather-planner/internal/domain/events"
	"github.com/yanqian/weather-planner/internal/domain/weather"
)

// WeatherProvider retrieves observations from an upstream weather service.
type WeatherProvider interface {
	Current(ctx context.Context, coords weather.Coordinates, units string) (weather.Current, error)
	Forecast(ctx context.Context, coords weather.Coordinates, units string) (weather.Forecast, error)
	AirQuality(ctx context.Context, coords weather.Coordinates) (weather.AirQuality, error)
	Geocode(ctx context.Context, query string, limit int) ([]weather.Place, error)
	ReverseGeocode(ctx context.Context, coords weather.Coordinates) ([]weather.Place, error)
}

// Cache stores encoded provider responses for a bounded time.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// EventFinder lists local events for the plan view.
type EventFinder interface {
	List(ctx context.Context, filter events.Filter) (events.Page, error)
}
