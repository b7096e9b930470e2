package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-planner/internal/domain/planner"
	"github.com/yanqian/weather-planner/internal/domain/weather"
)

// CurrentWeather returns decorated current conditions.
func (h *Handler) CurrentWeather(c *gin.Context) {
	req, err := locationRequest(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	view, err := h.plannerSvc.CurrentWeather(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	noStoreIfMock(c, view.Current.IsMock)
	c.JSON(http.StatusOK, view)
}

// Forecast returns the hourly and daily forecast.
func (h *Handler) Forecast(c *gin.Context) {
	req, err := locationRequest(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	forecast, err := h.plannerSvc.Forecast(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	noStoreIfMock(c, forecast.IsMock)
	c.JSON(http.StatusOK, forecast)
}

// AirQuality returns the current air pollution reading.
func (h *Handler) AirQuality(c *gin.Context) {
	req, err := locationRequest(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	aq, err := h.plannerSvc.AirQuality(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	noStoreIfMock(c, aq.IsMock)
	c.JSON(http.StatusOK, aq)
}

// Geocode resolves a place name, or a coordinate pair when q is empty.
func (h *Handler) Geocode(c *gin.Context) {
	lat, lon, err := coordinates(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	limit, err := optionalInt(c, "limit")
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	places, err := h.plannerSvc.Geocode(c.Request.Context(), planner.GeocodeRequest{
		Query:     c.Query("q"),
		Latitude:  lat,
		Longitude: lon,
		Limit:     limit,
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	noStoreIfMock(c, weather.AnyMock(places))
	c.JSON(http.StatusOK, gin.H{"places": places})
}

// Activities lists the catalog, optionally filtered by a search query.
func (h *Handler) Activities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activities": h.plannerSvc.Activities(c.Query("q"))})
}

// Activity returns one catalog entry.
func (h *Handler) Activity(c *gin.Context) {
	a, err := h.plannerSvc.Activity(c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

// Suggestions ranks activities for observed or requested weather.
func (h *Handler) Suggestions(c *gin.Context) {
	loc, err := locationRequest(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	limit, err := optionalInt(c, "limit")
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	view, err := h.plannerSvc.Suggestions(c.Request.Context(), planner.SuggestionRequest{
		Location: loc,
		Weather:  c.Query("weather"),
		Category: c.Query("category"),
		Limit:    limit,
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	noStoreIfMock(c, view.IsMock)
	c.JSON(http.StatusOK, view)
}

// BestDays ranks the forecast days.
func (h *Handler) BestDays(c *gin.Context) {
	req, err := locationRequest(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	view, err := h.plannerSvc.BestDays(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	noStoreIfMock(c, view.IsMock)
	c.JSON(http.StatusOK, view)
}

// Timeline classifies the coming hours into activity windows.
func (h *Handler) Timeline(c *gin.Context) {
	req, err := locationRequest(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	view, err := h.plannerSvc.Timeline(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	noStoreIfMock(c, view.IsMock)
	c.JSON(http.StatusOK, view)
}

// Plan aggregates everything needed to plan the day.
func (h *Handler) Plan(c *gin.Context) {
	req, err := locationRequest(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	view, err := h.plannerSvc.Plan(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	noStoreIfMock(c, view.IsMock)
	c.JSON(http.StatusOK, view)
}

type scoreDaysRequest struct {
	Days []weather.DailyForecast `json:"days"`
}

// ScoreDays scores caller-supplied daily forecasts.
func (h *Handler) ScoreDays(c *gin.Context) {
	var req scoreDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errMessage(err), err)
		return
	}
	c.JSON(http.StatusOK, h.plannerSvc.ScoreDays(req.Days))
}

type scoreTimelineRequest struct {
	Hours    []weather.HourlyForecast `json:"hours"`
	Sunrise  int64                    `json:"sunrise"`
	Sunset   int64                    `json:"sunset"`
	Timezone int                      `json:"timezone"`
}

// ScoreTimeline classifies caller-supplied hourly forecasts.
func (h *Handler) ScoreTimeline(c *gin.Context) {
	var req scoreTimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errMessage(err), err)
		return
	}
	if req.Sunrise <= 0 || req.Sunset <= req.Sunrise {
		badRequest(c, "sunrise and sunset must be unix seconds with sunrise before sunset", nil)
		return
	}
	c.JSON(http.StatusOK, h.plannerSvc.ScoreTimeline(req.Hours, req.Sunrise, req.Sunset, req.Timezone))
}
