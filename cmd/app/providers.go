package main

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-planner/internal/domain/events"
	"github.com/yanqian/weather-planner/internal/domain/planner"
	"github.com/yanqian/weather-planner/internal/domain/profile"
	"github.com/yanqian/weather-planner/internal/domain/weather"
	"github.com/yanqian/weather-planner/internal/infra/config"
	"github.com/yanqian/weather-planner/internal/infra/forecastcache"
	"github.com/yanqian/weather-planner/internal/infra/historyrepo"
	"github.com/yanqian/weather-planner/internal/infra/httpclient"
	"github.com/yanqian/weather-planner/internal/infra/openweather"
	"github.com/yanqian/weather-planner/internal/infra/profilestore"
	"github.com/yanqian/weather-planner/internal/infra/scheduler"
	"github.com/yanqian/weather-planner/pkg/logger"
	"github.com/yanqian/weather-planner/pkg/util"
)

// provideLogger depends on the config so .env is loaded before LOG_LEVEL is read.
func provideLogger(_ *config.Config) *slog.Logger {
	return logger.New()
}

func providePlannerConfig(cfg *config.Config) planner.Config {
	return planner.Config{
		SuggestionLimit: cfg.Planner.SuggestionLimit,
		TimelineHours:   cfg.Planner.TimelineHours,
		GeocodeLimit:    cfg.Planner.GeocodeLimit,
		EventsLimit:     cfg.Planner.EventsLimit,
		DefaultLocation: toCoordinates(cfg.Planner.DefaultLocation),
		WeatherTTL:      cfg.Cache.WeatherTTL,
		ForecastTTL:     cfg.Cache.ForecastTTL,
		AirQualityTTL:   cfg.Cache.AirQualityTTL,
		GeocodeTTL:      cfg.Cache.GeocodeTTL,
	}
}

func provideProfileConfig(cfg *config.Config) profile.Config {
	return profile.Config{
		HistoryLimit: cfg.Profile.HistoryLimit,
		MaxLocations: cfg.Profile.MaxLocations,
	}
}

func provideEventsService(cfg *config.Config, logger *slog.Logger) events.Service {
	return events.NewService(events.Config{PageSize: cfg.Events.PageSize}, logger, util.NowUTC)
}

func provideEventFinder(svc events.Service) planner.EventFinder {
	return svc
}

func provideHTTPClient(cfg *config.Config, logger *slog.Logger) *httpclient.Client {
	return httpclient.New(httpclient.Config{
		Name:       "openweather",
		Timeout:    cfg.OpenWeather.Timeout,
		MaxRetries: uint64(cfg.OpenWeather.MaxRetries),
	}, logger)
}

func provideWeatherClient(cfg *config.Config, doer *httpclient.Client, logger *slog.Logger) *openweather.Client {
	mock := openweather.NewMockSource(rand.New(rand.NewSource(time.Now().UnixNano())), util.NowUTC)
	client := openweather.NewClient(openweather.Config{
		APIKey:      cfg.OpenWeather.APIKey,
		BaseURL:     cfg.OpenWeather.BaseURL,
		GeoBaseURL:  cfg.OpenWeather.GeoBaseURL,
		MockOnError: cfg.OpenWeather.MockOnError,
	}, doer, mock, logger)
	if client.MockMode() {
		logger.Warn("openweather api key not set, serving mock data")
	}
	return client
}

// provideValkeyClient returns nil when valkey is disabled or unreachable.
func provideValkeyClient(cfg *config.Config, logger *slog.Logger) valkey.Client {
	if !cfg.Valkey.Enabled {
		return nil
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory stores", "error", err)
		return nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory stores", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory stores", "error", err)
		client.Close()
		return nil
	}
	logger.Info("valkey enabled", "addr", cfg.Valkey.Addr)
	return client
}

func provideForecastCache(cfg *config.Config, client valkey.Client) planner.Cache {
	if client == nil {
		return forecastcache.NewMemoryCache()
	}
	return forecastcache.NewValkeyCache(client, cfg.Cache.Prefix)
}

func provideProfileStore(cfg *config.Config, client valkey.Client) profile.Store {
	if client == nil {
		return profilestore.NewMemoryStore()
	}
	return profilestore.NewValkeyStore(client, cfg.Profile.Prefix)
}

func provideHistoryRepository(cfg *config.Config, logger *slog.Logger) profile.HistoryRepository {
	fallback := historyrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory history repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory history repository", "error", err)
		return fallback
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory history repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory history repository", "error", err)
		pool.Close()
		return fallback
	}
	repo := historyrepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("history schema setup failed, using memory history repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("postgres history repository enabled")
	return repo
}

func provideWarmer(cfg *config.Config, svc planner.Service, logger *slog.Logger) *scheduler.Warmer {
	locations := make([]weather.Coordinates, 0, len(cfg.Scheduler.Locations))
	for _, loc := range cfg.Scheduler.Locations {
		locations = append(locations, toCoordinates(loc))
	}
	return scheduler.NewWarmer(scheduler.Config{
		Enabled:   cfg.Scheduler.Enabled,
		Interval:  cfg.Scheduler.Interval,
		Timeout:   cfg.Scheduler.Timeout,
		Locations: locations,
	}, svc, logger)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func toCoordinates(loc config.LocationConfig) weather.Coordinates {
	return weather.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}
}
