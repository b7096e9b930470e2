package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	OpenWeather OpenWeatherConfig `yaml:"openWeather"`
	Valkey      ValkeyConfig      `yaml:"valkey"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Cache       CacheConfig       `yaml:"cache"`
	Planner     PlannerConfig     `yaml:"planner"`
	Events      EventsConfig      `yaml:"events"`
	Profile     ProfileConfig     `yaml:"profile"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// OpenWeatherConfig contains the weather provider settings.
type OpenWeatherConfig struct {
	APIKey      string        `yaml:"apiKey"`
	BaseURL     string        `yaml:"baseUrl"`
	GeoBaseURL  string        `yaml:"geoBaseUrl"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"maxRetries"`
	MockOnError bool          `yaml:"mockOnError"`
}

// ValkeyConfig contains connection information for cache and profile storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings. An empty DSN keeps history in memory.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// CacheConfig sets the response cache windows per endpoint.
type CacheConfig struct {
	Prefix        string        `yaml:"prefix"`
	WeatherTTL    time.Duration `yaml:"weatherTtl"`
	ForecastTTL   time.Duration `yaml:"forecastTtl"`
	AirQualityTTL time.Duration `yaml:"airQualityTtl"`
	GeocodeTTL    time.Duration `yaml:"geocodeTtl"`
}

// LocationConfig is a latitude/longitude pair.
type LocationConfig struct {
	Latitude  float64 `yaml:"lat"`
	Longitude float64 `yaml:"lon"`
}

// PlannerConfig controls the planner domain.
type PlannerConfig struct {
	SuggestionLimit int            `yaml:"suggestionLimit"`
	TimelineHours   int            `yaml:"timelineHours"`
	GeocodeLimit    int            `yaml:"geocodeLimit"`
	EventsLimit     int            `yaml:"eventsLimit"`
	DefaultLocation LocationConfig `yaml:"defaultLocation"`
}

// EventsConfig controls the events listing.
type EventsConfig struct {
	PageSize int `yaml:"pageSize"`
}

// ProfileConfig controls client profile storage.
type ProfileConfig struct {
	Prefix       string `yaml:"prefix"`
	HistoryLimit int    `yaml:"historyLimit"`
	MaxLocations int    `yaml:"maxLocations"`
}

// SchedulerConfig controls the cache warmer.
type SchedulerConfig struct {
	Enabled   bool             `yaml:"enabled"`
	Interval  time.Duration    `yaml:"interval"`
	Timeout   time.Duration    `yaml:"timeout"`
	Locations []LocationConfig `yaml:"locations"`
}

// Load reads .env, then the YAML file, then environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	envString("HTTP_ADDRESS", &cfg.HTTP.Address)
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	envBool("HTTP_RATE_LIMIT_ENABLED", &cfg.HTTP.RateLimit.Enabled)
	envInt("HTTP_RATE_LIMIT_RPM", &cfg.HTTP.RateLimit.RequestsPerMinute)
	envInt("HTTP_RATE_LIMIT_BURST", &cfg.HTTP.RateLimit.Burst)
	envBool("HTTP_RETRY_ENABLED", &cfg.HTTP.Retry.Enabled)
	envInt("HTTP_RETRY_MAX_ATTEMPTS", &cfg.HTTP.Retry.MaxAttempts)
	envDuration("HTTP_RETRY_BASE_BACKOFF", &cfg.HTTP.Retry.BaseBackoff)

	envString("OPENWEATHER_API_KEY", &cfg.OpenWeather.APIKey)
	envString("OPENWEATHER_BASE_URL", &cfg.OpenWeather.BaseURL)
	envString("OPENWEATHER_GEO_BASE_URL", &cfg.OpenWeather.GeoBaseURL)
	envDuration("OPENWEATHER_TIMEOUT", &cfg.OpenWeather.Timeout)
	envInt("OPENWEATHER_MAX_RETRIES", &cfg.OpenWeather.MaxRetries)
	envBool("OPENWEATHER_MOCK_ON_ERROR", &cfg.OpenWeather.MockOnError)

	envBool("VALKEY_ENABLED", &cfg.Valkey.Enabled)
	envString("VALKEY_ADDR", &cfg.Valkey.Addr)

	envString("POSTGRES_DSN", &cfg.Postgres.DSN)
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}

	envBool("SCHEDULER_ENABLED", &cfg.Scheduler.Enabled)
	envDuration("SCHEDULER_INTERVAL", &cfg.Scheduler.Interval)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func envDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 2,
				BaseBackoff: 150 * time.Millisecond,
			},
		},
		OpenWeather: OpenWeatherConfig{
			BaseURL:     "https://api.openweathermap.org/data/2.5",
			GeoBaseURL:  "https://api.openweathermap.org/geo/1.0",
			Timeout:     5 * time.Second,
			MaxRetries:  2,
			MockOnError: true,
		},
		Postgres: PostgresConfig{
			MaxConns: 4,
		},
		Cache: CacheConfig{
			Prefix:        "wp:cache",
			WeatherTTL:    5 * time.Minute,
			ForecastTTL:   10 * time.Minute,
			AirQualityTTL: 30 * time.Minute,
			GeocodeTTL:    24 * time.Hour,
		},
		Planner: PlannerConfig{
			SuggestionLimit: 12,
			TimelineHours:   8,
			GeocodeLimit:    5,
			EventsLimit:     10,
			DefaultLocation: LocationConfig{Latitude: 40.7128, Longitude: -74.006},
		},
		Events: EventsConfig{
			PageSize: 10,
		},
		Profile: ProfileConfig{
			Prefix:       "wp:profile",
			HistoryLimit: 100,
			MaxLocations: 20,
		},
		Scheduler: SchedulerConfig{
			Enabled:  false,
			Interval: 10 * time.Minute,
			Timeout:  30 * time.Second,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	if strings.TrimSpace(c.OpenWeather.BaseURL) == "" || strings.TrimSpace(c.OpenWeather.GeoBaseURL) == "" {
		return errors.New("openWeather.baseUrl and openWeather.geoBaseUrl cannot be empty")
	}
	if c.OpenWeather.MaxRetries < 0 {
		return errors.New("openWeather.maxRetries cannot be negative")
	}
	if c.Valkey.Enabled && strings.TrimSpace(c.Valkey.Addr) == "" {
		return errors.New("valkey.addr cannot be empty when valkey is enabled")
	}
	if c.Cache.WeatherTTL < 0 || c.Cache.ForecastTTL < 0 || c.Cache.AirQualityTTL < 0 || c.Cache.GeocodeTTL < 0 {
		return errors.New("cache ttls cannot be negative")
	}
	if err := validateLocation("planner.defaultLocation", c.Planner.DefaultLocation); err != nil {
		return err
	}
	if c.Events.PageSize <= 0 {
		return errors.New("events.pageSize must be positive")
	}
	if c.Profile.HistoryLimit <= 0 {
		return errors.New("profile.historyLimit must be positive")
	}
	if c.Scheduler.Enabled && c.Scheduler.Interval < time.Minute {
		return errors.New("scheduler.interval must be at least 1m")
	}
	for i, loc := range c.Scheduler.Locations {
		if err := validateLocation(fmt.Sprintf("scheduler.locations[%d]", i), loc); err != nil {
			return err
		}
	}
	return nil
}

func validateLocation(field string, loc LocationConfig) error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("%s.lat must be between -90 and 90", field)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("%s.lon must be between -180 and 180", field)
	}
	return nil
}
