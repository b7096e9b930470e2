//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/weather-planner/internal/bootstrap"
	"github.com/yanqian/weather-planner/internal/domain/activity"
	"github.com/yanqian/weather-planner/internal/domain/planner"
	"github.com/yanqian/weather-planner/internal/domain/profile"
	"github.com/yanqian/weather-planner/internal/infra/config"
	"github.com/yanqian/weather-planner/internal/infra/openweather"
	httpiface "github.com/yanqian/weather-planner/internal/interface/http"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		provideLogger,
		providePlannerConfig,
		provideProfileConfig,
		provideHTTPClient,
		provideWeatherClient,
		provideValkeyClient,
		provideForecastCache,
		provideProfileStore,
		provideHistoryRepository,
		provideEventsService,
		provideEventFinder,
		provideWarmer,
		activity.DefaultCatalog,
		planner.NewService,
		profile.NewService,
		wire.Bind(new(planner.WeatherProvider), new(*openweather.Client)),
		wire.Bind(new(profile.ActivityLookup), new(*activity.Catalog)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
