package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-planner/internal/domain/activity"
	"github.com/yanqian/weather-planner/internal/domain/dayscore"
	"github.com/yanqian/weather-planner/internal/domain/events"
	"github.com/yanqian/weather-planner/internal/domain/planner"
	"github.com/yanqian/weather-planner/internal/domain/profile"
	"github.com/yanqian/weather-planner/internal/domain/timeline"
	"github.com/yanqian/weather-planner/internal/domain/weather"
	"github.com/yanqian/weather-planner/internal/infra/config"
	"github.com/yanqian/weather-planner/internal/infra/historyrepo"
	"github.com/yanqian/weather-planner/internal/infra/profilestore"
	apperrors "github.com/yanqian/weather-planner/pkg/errors"
)

const testClientID = "0b6c7a52-3c1e-4b8e-9a39-3d2f4f7f1c11"

func TestRouter_Health(t *testing.T) {
	server := newRouterUnderTest(t, &stubPlanner{})
	rec := performRequest(server, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CurrentWeather(t *testing.T) {
	svc := &stubPlanner{
		currentFn: func(ctx context.Context, req planner.LocationRequest) (planner.WeatherView, error) {
			require.NotNil(t, req.Latitude)
			require.InDelta(t, 51.5, *req.Latitude, 1e-9)
			require.Equal(t, "imperial", req.Units)
			return planner.WeatherView{Category: weather.Rain, Icon: "🌧️"}, nil
		},
	}

	rec := performRequest(newRouterUnderTest(t, svc), http.MethodGet, "/api/v1/weather?lat=51.5&lon=-0.12&units=imperial", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))

	var got planner.WeatherView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, weather.Rain, got.Category)
}

func TestRouter_BadCoordinateSyntax(t *testing.T) {
	rec := performRequest(newRouterUnderTest(t, &stubPlanner{}), http.MethodGet, "/api/v1/forecast?lat=north", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Equal(t, "lat must be a number", errBody["error"]["message"])
}

func TestRouter_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.Wrap(apperrors.CodeInvalidInput, "latitude must be between -90 and 90", nil), http.StatusBadRequest, "invalid_input"},
		{apperrors.Wrap(apperrors.CodeProviderError, "weather provider failed", nil), http.StatusBadGateway, "provider_error"},
		{apperrors.Wrap(apperrors.CodeStorageError, "boom", nil), http.StatusInternalServerError, "storage_error"},
	}
	for _, tc := range cases {
		svc := &stubPlanner{
			bestDaysFn: func(ctx context.Context, req planner.LocationRequest) (planner.BestDaysView, error) {
				return planner.BestDaysView{}, tc.err
			},
		}
		rec := performRequest(newRouterUnderTest(t, svc), http.MethodGet, "/api/v1/best-days?lat=1&lon=1", "", nil)
		require.Equal(t, tc.status, rec.Code, tc.code)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		errBody := decodeErrorBody(t, rec.Body.Bytes())
		require.Equal(t, tc.code, errBody["error"]["code"])
	}
}

func TestRouter_ActivityNotFound(t *testing.T) {
	rec := performRequest(newRouterUnderTest(t, &stubPlanner{}), http.MethodGet, "/api/v1/activities/skydiving", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not_found", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])
}

func TestRouter_MockAnswersAreNotCacheable(t *testing.T) {
	svc := &stubPlanner{
		currentFn: func(ctx context.Context, req planner.LocationRequest) (planner.WeatherView, error) {
			return planner.WeatherView{Current: weather.Current{CityName: "Demo City", IsMock: true}}, nil
		},
		bestDaysFn: func(ctx context.Context, req planner.LocationRequest) (planner.BestDaysView, error) {
			return planner.BestDaysView{IsMock: true}, nil
		},
	}
	server := newRouterUnderTest(t, svc)

	rec := performRequest(server, http.MethodGet, "/api/v1/weather?lat=51.5&lon=-0.12", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	rec = performRequest(server, http.MethodGet, "/api/v1/best-days?lat=51.5&lon=-0.12", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestRouter_SuggestionsPassesQuery(t *testing.T) {
	svc := &stubPlanner{
		suggestionsFn: func(ctx context.Context, req planner.SuggestionRequest) (planner.SuggestionsView, error) {
			require.Equal(t, "rain", req.Weather)
			require.Equal(t, "indoor", req.Category)
			require.Equal(t, 3, req.Limit)
			require.Nil(t, req.Location.Latitude)
			return planner.SuggestionsView{Category: weather.Rain}, nil
		},
	}
	rec := performRequest(newRouterUnderTest(t, svc), http.MethodGet, "/api/v1/suggestions?weather=rain&category=indoor&limit=3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ScoreDays(t *testing.T) {
	svc := &stubPlanner{}
	body := `{"days":[{"date":1719792000,"tempMin":18,"tempMax":24,"conditions":[{"main":"Clear"}],"pop":0,"humidity":50,"windSpeed":3}]}`
	rec := performRequest(newRouterUnderTest(t, svc), http.MethodPost, "/api/v1/scoring/days", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.scoredDays, 1)
	require.Equal(t, "Clear", svc.scoredDays[0].Conditions[0].Main)

	rec = performRequest(newRouterUnderTest(t, svc), http.MethodPost, "/api/v1/scoring/days", `{"days":"nope"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ScoreTimelineValidatesSun(t *testing.T) {
	rec := performRequest(newRouterUnderTest(t, &stubPlanner{}), http.MethodPost, "/api/v1/scoring/timeline", `{"hours":[],"sunrise":200,"sunset":100}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Events(t *testing.T) {
	server := newRouterUnderTest(t, &stubPlanner{})

	rec := performRequest(server, http.MethodGet, "/api/v1/events?page=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page events.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Equal(t, 12, page.Total)
	require.Len(t, page.Events, 2)
	require.False(t, page.HasMore)

	rec = performRequest(server, http.MethodGet, "/api/v1/events?category=opera", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(server, http.MethodGet, "/api/v1/events?lat=40.7", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(server, http.MethodGet, "/api/v1/events/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(server, http.MethodGet, "/api/v1/events/search?q=", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(server, http.MethodGet, "/api/v1/events/"+page.Events[0].ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProfileRequiresClientID(t *testing.T) {
	server := newRouterUnderTest(t, &stubPlanner{})

	rec := performRequest(server, http.MethodGet, "/api/v1/profile/preferences", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(server, http.MethodGet, "/api/v1/profile/preferences", "", map[string]string{clientIDHeader: "abc"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_input", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])
}

func TestRouter_ProfileFlow(t *testing.T) {
	server := newRouterUnderTest(t, &stubPlanner{})
	headers := map[string]string{clientIDHeader: testClientID}

	rec := performRequest(server, http.MethodPut, "/api/v1/profile/preferences", `{"temperatureUnit":"fahrenheit"}`, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var prefs profile.Preferences
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	require.Equal(t, profile.TemperatureFahrenheit, prefs.TemperatureUnit)

	rec = performRequest(server, http.MethodPut, "/api/v1/profile/preferences", `{"theme":"neon"}`, headers)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(server, http.MethodPost, "/api/v1/profile/favorites/bowling", "", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	require.Equal(t, []string{"bowling"}, prefs.FavoriteActivities)

	rec = performRequest(server, http.MethodPost, "/api/v1/profile/locations", `{"name":"Home","latitude":40.71,"longitude":-74.0}`, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	var loc profile.SavedLocation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loc))
	require.True(t, loc.IsDefault)

	rec = performRequest(server, http.MethodPut, "/api/v1/profile/locations/"+loc.ID+"/default", "", headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(server, http.MethodDelete, "/api/v1/profile/locations/"+loc.ID, "", headers)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = performRequest(server, http.MethodDelete, "/api/v1/profile/locations/"+loc.ID, "", headers)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(server, http.MethodPost, "/api/v1/profile/history", `{"activityId":"park-picnic","weatherCondition":"Clear","temperature":23,"rating":5}`, headers)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performRequest(server, http.MethodGet, "/api/v1/profile/history", "", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		History []profile.HistoryEntry `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history.History, 1)
	require.Equal(t, "clear", history.History[0].WeatherCondition)
}

func TestRouter_RetriesGetOn5xx(t *testing.T) {
	svc := &stubPlanner{
		timelineFn: func(ctx context.Context, req planner.LocationRequest) (planner.TimelineView, error) {
			return planner.TimelineView{}, apperrors.Wrap(apperrors.CodeProviderError, "weather provider failed", nil)
		},
	}
	rec := performRequest(newRouterUnderTest(t, svc), http.MethodGet, "/api/v1/timeline?lat=1&lon=1", "", nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, 2, svc.callCount("timeline"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	rec := performRequest(newRouterUnderTest(t, &stubPlanner{}), http.MethodOptions, "/api/v1/profile/preferences", "", map[string]string{"Origin": "https://planner.example"})
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://planner.example", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), clientIDHeader)
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 2}
	server := newRouterWithConfig(t, cfg, &stubPlanner{})

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, performRequest(server, http.MethodGet, "/api/v1/activities", "", nil).Code)
	}
	rec := performRequest(server, http.MethodGet, "/api/v1/activities", "", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func performRequest(server *http.Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			AllowedOrigins: []string{"https://planner.example"},
			Retry: config.RetryConfig{
				Enabled:     true,
				MaxAttempts: 2,
				BaseBackoff: time.Millisecond,
			},
		},
		Cache: config.CacheConfig{
			WeatherTTL:    5 * time.Minute,
			ForecastTTL:   10 * time.Minute,
			AirQualityTTL: 30 * time.Minute,
			GeocodeTTL:    24 * time.Hour,
		},
	}
}

func newRouterUnderTest(t *testing.T, svc planner.Service) *http.Server {
	t.Helper()
	return newRouterWithConfig(t, testConfig(), svc)
}

func newRouterWithConfig(t *testing.T, cfg *config.Config, svc planner.Service) *http.Server {
	t.Helper()
	logger := newTestLogger()
	anchor := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	eventsSvc := events.NewService(events.Config{PageSize: 10}, logger, func() time.Time { return anchor })
	profileSvc := profile.NewService(profile.Config{}, profilestore.NewMemoryStore(), historyrepo.NewMemoryRepository(), activity.DefaultCatalog(), logger)
	handler := NewHandler(svc, eventsSvc, profileSvc, logger)
	return NewRouter(cfg, handler, logger)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubPlanner struct {
	mu            sync.Mutex
	calls         map[string]int
	scoredDays    []weather.DailyForecast
	currentFn     func(ctx context.Context, req planner.LocationRequest) (planner.WeatherView, error)
	suggestionsFn func(ctx context.Context, req planner.SuggestionRequest) (planner.SuggestionsView, error)
	bestDaysFn    func(ctx context.Context, req planner.LocationRequest) (planner.BestDaysView, error)
	timelineFn    func(ctx context.Context, req planner.LocationRequest) (planner.TimelineView, error)
}

func (s *stubPlanner) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[name]++
}

func (s *stubPlanner) callCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *stubPlanner) CurrentWeather(ctx context.Context, req planner.LocationRequest) (planner.WeatherView, error) {
	s.record("current")
	if s.currentFn != nil {
		return s.currentFn(ctx, req)
	}
	return planner.WeatherView{}, nil
}

func (s *stubPlanner) Forecast(ctx context.Context, req planner.LocationRequest) (weather.Forecast, error) {
	s.record("forecast")
	return weather.Forecast{}, nil
}

func (s *stubPlanner) AirQuality(ctx context.Context, req planner.LocationRequest) (weather.AirQuality, error) {
	s.record("air")
	return weather.AirQuality{AQI: 2}, nil
}

func (s *stubPlanner) Geocode(ctx context.Context, req planner.GeocodeRequest) ([]weather.Place, error) {
	s.record("geocode")
	return []weather.Place{{Name: req.Query}}, nil
}

func (s *stubPlanner) Activities(query string) []activity.Activity {
	return activity.DefaultCatalog().Search(query)
}

func (s *stubPlanner) Activity(id string) (activity.Activity, error) {
	a, ok := activity.DefaultCatalog().ByID(id)
	if !ok {
		return activity.Activity{}, apperrors.Wrap(apperrors.CodeNotFound, "activity not found", nil)
	}
	return a, nil
}

func (s *stubPlanner) Suggestions(ctx context.Context, req planner.SuggestionRequest) (planner.SuggestionsView, error) {
	s.record("suggestions")
	if s.suggestionsFn != nil {
		return s.suggestionsFn(ctx, req)
	}
	return planner.SuggestionsView{}, nil
}

func (s *stubPlanner) BestDays(ctx context.Context, req planner.LocationRequest) (planner.BestDaysView, error) {
	s.record("bestDays")
	if s.bestDaysFn != nil {
		return s.bestDaysFn(ctx, req)
	}
	return planner.BestDaysView{}, nil
}

func (s *stubPlanner) Timeline(ctx context.Context, req planner.LocationRequest) (planner.TimelineView, error) {
	s.record("timeline")
	if s.timelineFn != nil {
		return s.timelineFn(ctx, req)
	}
	return planner.TimelineView{}, nil
}

func (s *stubPlanner) Plan(ctx context.Context, req planner.LocationRequest) (planner.PlanView, error) {
	s.record("plan")
	return planner.PlanView{}, nil
}

func (s *stubPlanner) ScoreDays(forecasts []weather.DailyForecast) planner.BestDaysView {
	s.mu.Lock()
	s.scoredDays = forecasts
	s.mu.Unlock()
	return planner.BestDaysView{Days: []dayscore.DayScore{}}
}

func (s *stubPlanner) ScoreTimeline(hours []weather.HourlyForecast, sunrise, sunset int64, offsetSeconds int) planner.TimelineView {
	return planner.TimelineView{Slots: []timeline.Slot{}}
}

func (s *stubPlanner) Refresh(ctx context.Context, coords weather.Coordinates) error {
	return nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
