package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/weather-planner/internal/domain/activity"
	"github.com/yanqian/weather-planner/internal/domain/dayscore"
	"github.com/yanqian/weather-planner/internal/domain/events"
	"github.com/yanqian/weather-planner/internal/domain/timeline"
	"github.com/yanqian/weather-planner/internal/domain/weather"
	apperrors "github.com/yanqian/weather-planner/pkg/errors"
	"github.com/yanqian/weather-planner/pkg/util"
)

// Service plans days around the weather at a location.
type Service interface {
	CurrentWeather(ctx context.Context, req LocationRequest) (WeatherView, error)
	Forecast(ctx context.Context, req LocationRequest) (weather.Forecast, error)
	AirQuality(ctx context.Context, req LocationRequest) (weather.AirQuality, error)
	Geocode(ctx context.Context, req GeocodeRequest) ([]weather.Place, error)
	Activities(query string) []activity.Activity
	Activity(id string) (activity.Activity, error)
	Suggestions(ctx context.Context, req SuggestionRequest) (SuggestionsView, error)
	BestDays(ctx context.Context, req LocationRequest) (BestDaysView, error)
	Timeline(ctx context.Context, req LocationRequest) (TimelineView, error)
	Plan(ctx context.Context, req LocationRequest) (PlanView, error)
	ScoreDays(forecasts []weather.DailyForecast) BestDaysView
	ScoreTimeline(hours []weather.HourlyForecast, sunrise, sunset int64, offsetSeconds int) TimelineView
	Refresh(ctx context.Context, coords weather.Coordinates) error
}

type service struct {
	cfg      Config
	provider WeatherProvider
	cache    Cache
	catalog  *activity.Catalog
	scorer   *dayscore.Scorer
	events   EventFinder
	logger   *slog.Logger
}

// NewService wires up the planner domain. cache and finder may be nil.
func NewService(cfg Config, provider WeatherProvider, cache Cache, catalog *activity.Catalog, finder EventFinder, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg.withDefaults(),
		provider: provider,
		cache:    cache,
		catalog:  catalog,
		scorer:   dayscore.NewScorer(catalog),
		events:   finder,
		logger:   logger.With("component", "planner.service"),
	}
}

func (s *service) CurrentWeather(ctx context.Context, req LocationRequest) (WeatherView, error) {
	coords, units, err := s.resolve(req)
	if err != nil {
		return WeatherView{}, err
	}
	current, err := s.current(ctx, coords, units)
	if err != nil {
		return WeatherView{}, err
	}
	return describe(current), nil
}

func (s *service) Forecast(ctx context.Context, req LocationRequest) (weather.Forecast, error) {
	coords, units, err := s.resolve(req)
	if err != nil {
		return weather.Forecast{}, err
	}
	return s.forecast(ctx, coords, units)
}

func (s *service) AirQuality(ctx context.Context, req LocationRequest) (weather.AirQuality, error) {
	coords, _, err := s.resolve(req)
	if err != nil {
		return weather.AirQuality{}, err
	}
	aq, err := cached(ctx, s, cacheKey("air", coords), s.cfg.AirQualityTTL, func() (weather.AirQuality, error) {
		return s.provider.AirQuality(ctx, coords)
	})
	if err != nil {
		return weather.AirQuality{}, apperrors.Wrap(apperrors.CodeProviderError, "failed to fetch air quality", err)
	}
	return aq, nil
}

func (s *service) Geocode(ctx context.Context, req GeocodeRequest) ([]weather.Place, error) {
	query := strings.TrimSpace(req.Query)
	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.GeocodeLimit
	}

	var (
		key   string
		fetch func() ([]weather.Place, error)
	)
	switch {
	case query != "":
		key = fmt.Sprintf("geocode:%s:%d", strings.ToLower(query), limit)
		fetch = func() ([]weather.Place, error) { return s.provider.Geocode(ctx, query, limit) }
	case req.Latitude != nil && req.Longitude != nil:
		coords, _, err := s.resolve(LocationRequest{Latitude: req.Latitude, Longitude: req.Longitude})
		if err != nil {
			return nil, err
		}
		key = cacheKey("reverse", coords)
		fetch = func() ([]weather.Place, error) { return s.provider.ReverseGeocode(ctx, coords) }
	default:
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "missing query or coordinates", nil)
	}

	places, err := cached(ctx, s, key, s.cfg.GeocodeTTL, fetch)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeProviderError, "failed to geocode", err)
	}
	return places, nil
}

func (s *service) Activities(query string) []activity.Activity {
	if strings.TrimSpace(query) == "" {
		return s.catalog.All()
	}
	return s.catalog.Search(strings.TrimSpace(query))
}

func (s *service) Activity(id string) (activity.Activity, error) {
	a, ok := s.catalog.ByID(id)
	if !ok {
		return activity.Activity{}, apperrors.Wrap(apperrors.CodeNotFound, "activity not found", nil)
	}
	return a, nil
}

func (s *service) Suggestions(ctx context.Context, req SuggestionRequest) (SuggestionsView, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.SuggestionLimit
	}
	filter := strings.ToLower(strings.TrimSpace(req.Category))
	if filter == "" {
		filter = activity.FilterAll
	}

	var (
		category weather.Category
		mock     bool
	)
	if strings.TrimSpace(req.Weather) != "" {
		parsed, ok := weather.ParseCategory(req.Weather)
		if !ok {
			return SuggestionsView{}, apperrors.Wrap(apperrors.CodeInvalidInput, "unknown weather category "+req.Weather, nil)
		}
		category = parsed
	} else {
		coords, units, err := s.resolve(req.Location)
		if err != nil {
			return SuggestionsView{}, err
		}
		current, err := s.current(ctx, coords, units)
		if err != nil {
			return SuggestionsView{}, err
		}
		category = weather.PrimaryCategory(current.Conditions)
		mock = current.IsMock
	}

	suggestions := activity.FilterByCategory(s.catalog.Suggest(category, limit), filter)
	return SuggestionsView{Category: category, Suggestions: suggestions, IsMock: mock}, nil
}

func (s *service) BestDays(ctx context.Context, req LocationRequest) (BestDaysView, error) {
	coords, _, err := s.resolve(req)
	if err != nil {
		return BestDaysView{}, err
	}
	fc, err := s.forecast(ctx, coords, UnitsMetric)
	if err != nil {
		return BestDaysView{}, err
	}
	view := s.ScoreDays(fc.Daily)
	view.IsMock = fc.IsMock
	return view, nil
}

func (s *service) Timeline(ctx context.Context, req LocationRequest) (TimelineView, error) {
	coords, _, err := s.resolve(req)
	if err != nil {
		return TimelineView{}, err
	}
	current, err := s.current(ctx, coords, UnitsMetric)
	if err != nil {
		return TimelineView{}, err
	}
	fc, err := s.forecast(ctx, coords, UnitsMetric)
	if err != nil {
		return TimelineView{}, err
	}
	view := s.ScoreTimeline(s.window(fc.Hourly), current.Sunrise, current.Sunset, current.Timezone)
	view.IsMock = current.IsMock || fc.IsMock
	return view, nil
}

func (s *service) Plan(ctx context.Context, req LocationRequest) (PlanView, error) {
	coords, _, err := s.resolve(req)
	if err != nil {
		return PlanView{}, err
	}
	current, err := s.current(ctx, coords, UnitsMetric)
	if err != nil {
		return PlanView{}, err
	}
	fc, err := s.forecast(ctx, coords, UnitsMetric)
	if err != nil {
		return PlanView{}, err
	}

	mock := current.IsMock || fc.IsMock
	view := describe(current)
	tl := s.ScoreTimeline(s.window(fc.Hourly), current.Sunrise, current.Sunset, current.Timezone)
	tl.IsMock = mock
	suggestions := s.catalog.Suggest(view.Category, s.cfg.SuggestionLimit)
	if tl.BestTime != "" {
		for i := range suggestions {
			if !suggestions[i].Activity.Indoor {
				suggestions[i].BestTime = tl.BestTime
			}
		}
	}

	days := s.ScoreDays(fc.Daily)
	days.IsMock = fc.IsMock
	plan := PlanView{
		Weather:     view,
		Suggestions: suggestions,
		BestDays:    days,
		Timeline:    tl,
		Events:      s.nearbyEvents(ctx, coords, view.OutdoorFavorable),
		IsMock:      mock,
	}
	if aq, err := s.AirQuality(ctx, LocationRequest{Latitude: &coords.Latitude, Longitude: &coords.Longitude}); err != nil {
		s.logger.Warn("plan without air quality", "error", err)
	} else {
		plan.AirQuality = &aq
		plan.IsMock = plan.IsMock || aq.IsMock
	}
	s.logger.Info("plan built",
		"category", view.Category,
		"suggestions", len(plan.Suggestions),
		"days", len(plan.BestDays.Days),
		"events", len(plan.Events),
	)
	return plan, nil
}

func (s *service) ScoreDays(forecasts []weather.DailyForecast) BestDaysView {
	ranked := s.scorer.RankDays(forecasts)
	view := BestDaysView{Days: ranked}
	if len(ranked) > 0 {
		best := ranked[0]
		view.Best = &best
	}
	return view
}

func (s *service) ScoreTimeline(hours []weather.HourlyForecast, sunrise, sunset int64, offsetSeconds int) TimelineView {
	slots := timeline.Classify(hours, sunrise, sunset)
	view := TimelineView{Slots: slots}
	if best, ok := timeline.BestWindow(slots); ok {
		view.Best = &best
		view.BestTime = util.FormatHour(best.Forecast.Time, offsetSeconds)
	}
	return view
}

// Refresh fetches fresh metric observations for coords into the cache.
func (s *service) Refresh(ctx context.Context, coords weather.Coordinates) error {
	if _, _, err := s.resolve(LocationRequest{Latitude: &coords.Latitude, Longitude: &coords.Longitude}); err != nil {
		return err
	}
	current, err := s.provider.Current(ctx, coords, UnitsMetric)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeProviderError, "failed to refresh current weather", err)
	}
	s.store(ctx, cacheKey("weather:"+UnitsMetric, coords), s.cfg.WeatherTTL, current)

	fc, err := s.provider.Forecast(ctx, coords, UnitsMetric)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeProviderError, "failed to refresh forecast", err)
	}
	s.store(ctx, cacheKey("forecast:"+UnitsMetric, coords), s.cfg.ForecastTTL, fc)
	return nil
}

func (s *service) current(ctx context.Context, coords weather.Coordinates, units string) (weather.Current, error) {
	current, err := cached(ctx, s, cacheKey("weather:"+units, coords), s.cfg.WeatherTTL, func() (weather.Current, error) {
		return s.provider.Current(ctx, coords, units)
	})
	if err != nil {
		return weather.Current{}, apperrors.Wrap(apperrors.CodeProviderError, "failed to fetch current weather", err)
	}
	return current, nil
}

func (s *service) forecast(ctx context.Context, coords weather.Coordinates, units string) (weather.Forecast, error) {
	fc, err := cached(ctx, s, cacheKey("forecast:"+units, coords), s.cfg.ForecastTTL, func() (weather.Forecast, error) {
		return s.provider.Forecast(ctx, coords, units)
	})
	if err != nil {
		return weather.Forecast{}, apperrors.Wrap(apperrors.CodeProviderError, "failed to fetch forecast", err)
	}
	return fc, nil
}

func (s *service) nearbyEvents(ctx context.Context, coords weather.Coordinates, outdoorFavorable bool) []events.Event {
	if s.events == nil {
		return []events.Event{}
	}
	filter := events.Filter{Near: &coords}
	if !outdoorFavorable {
		indoor := true
		filter.IsIndoor = &indoor
	}
	page, err := s.events.List(ctx, filter)
	if err != nil {
		s.logger.Warn("plan without events", "error", err)
		return []events.Event{}
	}
	if len(page.Events) > s.cfg.EventsLimit {
		return page.Events[:s.cfg.EventsLimit]
	}
	return page.Events
}

func (s *service) window(hours []weather.HourlyForecast) []weather.HourlyForecast {
	if len(hours) > s.cfg.TimelineHours {
		return hours[:s.cfg.TimelineHours]
	}
	return hours
}

func (s *service) resolve(req LocationRequest) (weather.Coordinates, string, error) {
	units := strings.ToLower(strings.TrimSpace(req.Units))
	switch units {
	case "":
		units = UnitsMetric
	case UnitsMetric, UnitsImperial:
	default:
		return weather.Coordinates{}, "", apperrors.Wrap(apperrors.CodeInvalidInput, "units must be metric or imperial", nil)
	}

	switch {
	case req.Latitude == nil && req.Longitude == nil:
		return s.cfg.DefaultLocation, units, nil
	case req.Latitude == nil || req.Longitude == nil:
		return weather.Coordinates{}, "", apperrors.Wrap(apperrors.CodeInvalidInput, "missing latitude or longitude", nil)
	}
	lat, lon := *req.Latitude, *req.Longitude
	if lat < -90 || lat > 90 {
		return weather.Coordinates{}, "", apperrors.Wrap(apperrors.CodeInvalidInput, "latitude must be between -90 and 90", nil)
	}
	if lon < -180 || lon > 180 {
		return weather.Coordinates{}, "", apperrors.Wrap(apperrors.CodeInvalidInput, "longitude must be between -180 and 180", nil)
	}
	return weather.Coordinates{Latitude: lat, Longitude: lon}, units, nil
}

func describe(current weather.Current) WeatherView {
	category := weather.PrimaryCategory(current.Conditions)
	return WeatherView{
		Current:          current,
		Category:         category,
		Icon:             weather.Icon(category),
		Message:          weather.Message(category),
		Background:       weather.Background(category),
		Wind:             weather.WindDescription(current.WindSpeed),
		OutdoorFavorable: weather.IsOutdoorFavorable(category),
	}
}

func cacheKey(kind string, coords weather.Coordinates) string {
	return fmt.Sprintf("%s:%.2f:%.2f", kind, coords.Latitude, coords.Longitude)
}

// cached serves key from the cache when possible and stores fresh results.
// Cache failures never fail the request.
func cached[T any](ctx context.Context, s *service, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if s.cache != nil {
		raw, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("cache read failed", "key", key, "error", err)
		case ok:
			var value T
			if err := json.Unmarshal(raw, &value); err == nil {
				return value, nil
			}
			s.logger.Warn("discarding undecodable cache entry", "key", key)
		}
	}
	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	s.store(ctx, key, ttl, value)
	return value, nil
}

func (s *service) store(ctx context.Context, key string, ttl time.Duration, value any) {
	if s.cache == nil {
		return
	}
	if isMock(value) {
		s.logger.Debug("not caching mock data", "key", key)
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

type mockReporter interface {
	Mock() bool
}

// isMock reports whether value is synthetic provider data. Mock answers stand
// in for a failed upstream call and must not outlive it in the cache.
func isMock(value any) bool {
	switch v := value.(type) {
	case mockReporter:
		return v.Mock()
	case []weather.Place:
		return weather.AnyMock(v)
	}
	return false
}
