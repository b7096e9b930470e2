package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-planner/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		errorHandlingMiddleware(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)

	router.GET("/healthz", handler.Health)

	ttl := cfg.Cache
	api := router.Group("/api/v1")
	{
		api.GET("/healthz", handler.Health)

		api.GET("/weather", cacheControl(ttl.WeatherTTL), handler.CurrentWeather)
		api.GET("/forecast", cacheControl(ttl.ForecastTTL), handler.Forecast)
		api.GET("/air-quality", cacheControl(ttl.AirQualityTTL), handler.AirQuality)
		api.GET("/geocode", cacheControl(ttl.GeocodeTTL), handler.Geocode)

		api.GET("/activities", handler.Activities)
		api.GET("/activities/:id", handler.Activity)
		api.GET("/suggestions", cacheControl(ttl.WeatherTTL), handler.Suggestions)
		api.GET("/best-days", cacheControl(ttl.ForecastTTL), handler.BestDays)
		api.GET("/timeline", cacheControl(ttl.ForecastTTL), handler.Timeline)
		api.GET("/plan", cacheControl(ttl.WeatherTTL), handler.Plan)

		api.POST("/scoring/days", handler.ScoreDays)
		api.POST("/scoring/timeline", handler.ScoreTimeline)

		api.GET("/events", handler.ListEvents)
		api.GET("/events/search", handler.SearchEvents)
		api.GET("/events/categories", handler.EventCategories)
		api.GET("/events/:id", handler.Event)

		profile := api.Group("/profile", clientIDMiddleware())
		profile.GET("/preferences", handler.GetPreferences)
		profile.PUT("/preferences", handler.UpdatePreferences)
		profile.DELETE("/preferences", handler.ResetPreferences)
		profile.POST("/favorites/:activityId", handler.ToggleFavorite)
		profile.GET("/locations", handler.ListLocations)
		profile.POST("/locations", handler.AddLocation)
		profile.DELETE("/locations/:id", handler.RemoveLocation)
		profile.PUT("/locations/:id/default", handler.SetDefaultLocation)
		profile.GET("/history", handler.History)
		profile.POST("/history", handler.RecordActivity)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
