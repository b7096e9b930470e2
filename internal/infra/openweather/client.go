package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

const (
	defaultBaseURL    = "https://api.openweathermap.org/data/2.5"
	defaultGeoBaseURL = "https://api.openweathermap.org/geo/1.0"
)

// Doer sends HTTP requests. *httpclient.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures the OpenWeather client.
type Config struct {
	APIKey      string
	BaseURL     string
	GeoBaseURL  string
	MockOnError bool
}

// Client talks to the OpenWeather REST API. Without an API key every call is
// answered with synthetic data.
type Client struct {
	cfg    Config
	http   Doer
	mock   *MockSource
	logger *slog.Logger
}

// NewClient builds an API client.
func NewClient(cfg Config, doer Doer, mock *MockSource, logger *slog.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(defaultString(cfg.BaseURL, defaultBaseURL), "/")
	cfg.GeoBaseURL = strings.TrimRight(defaultString(cfg.GeoBaseURL, defaultGeoBaseURL), "/")
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if doer == nil {
		doer = http.DefaultClient
	}
	if mock == nil {
		mock = NewMockSource(nil, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   doer,
		mock:   mock,
		logger: logger.With("component", "openweather.client"),
	}
}

// MockMode reports whether the client serves synthetic data only.
func (c *Client) MockMode() bool {
	return c.cfg.APIKey == ""
}

// Current fetches the present observation.
func (c *Client) Current(ctx context.Context, coords weather.Coordinates, units string) (weather.Current, error) {
	if c.MockMode() {
		return c.mock.Current(), nil
	}
	var raw currentResponse
	if err := c.get(ctx, c.cfg.BaseURL+"/weather", coordQuery(coords, units), &raw); err != nil {
		return fallback(c, "current weather", err, c.mock.Current)
	}
	return parseCurrent(raw), nil
}

// Forecast fetches the 5 day / 3 hour forecast and condenses it.
func (c *Client) Forecast(ctx context.Context, coords weather.Coordinates, units string) (weather.Forecast, error) {
	if c.MockMode() {
		return c.mock.Forecast(), nil
	}
	var raw forecastResponse
	if err := c.get(ctx, c.cfg.BaseURL+"/forecast", coordQuery(coords, units), &raw); err != nil {
		return fallback(c, "forecast", err, c.mock.Forecast)
	}
	return parseForecast(raw), nil
}

// AirQuality fetches the current air pollution reading.
func (c *Client) AirQuality(ctx context.Context, coords weather.Coordinates) (weather.AirQuality, error) {
	if c.MockMode() {
		return c.mock.AirQuality(), nil
	}
	var raw airQualityResponse
	if err := c.get(ctx, c.cfg.BaseURL+"/air_pollution", coordQuery(coords, ""), &raw); err != nil {
		return fallback(c, "air quality", err, c.mock.AirQuality)
	}
	aq, ok := parseAirQuality(raw)
	if !ok {
		return weather.AirQuality{}, fmt.Errorf("air quality response has no readings")
	}
	return aq, nil
}

// Geocode resolves a place name to coordinates.
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]weather.Place, error) {
	if c.MockMode() {
		return c.mock.Geocode(query), nil
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	var raw []placeResponse
	if err := c.get(ctx, c.cfg.GeoBaseURL+"/direct", params, &raw); err != nil {
		return fallback(c, "geocode", err, func() []weather.Place { return c.mock.Geocode(query) })
	}
	return parsePlaces(raw), nil
}

// ReverseGeocode resolves coordinates to the nearest named place.
func (c *Client) ReverseGeocode(ctx context.Context, coords weather.Coordinates) ([]weather.Place, error) {
	if c.MockMode() {
		return c.mock.Geocode(""), nil
	}
	params := coordQuery(coords, "")
	params.Set("limit", "1")
	var raw []placeResponse
	if err := c.get(ctx, c.cfg.GeoBaseURL+"/reverse", params, &raw); err != nil {
		return fallback(c, "reverse geocode", err, func() []weather.Place { return c.mock.Geocode("") })
	}
	return parsePlaces(raw), nil
}

// fallback answers a failed upstream call from the mock source when configured to.
func fallback[T any](c *Client, what string, err error, mock func() T) (T, error) {
	if c.cfg.MockOnError {
		c.logger.Warn(what+" request failed, serving mock data", "error", err)
		return mock(), nil
	}
	var zero T
	return zero, err
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("appid", c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build openweather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("openweather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("openweather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode openweather response: %w", err)
	}
	return nil
}

func coordQuery(coords weather.Coordinates, units string) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	if units != "" {
		params.Set("units", units)
	}
	return params
}

func defaultString(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
