package events

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/weather-planner/internal/domain/weather"
	apperrors "github.com/yanqian/weather-planner/pkg/errors"
)

const defaultPageSize = 10

// Service exposes local event discovery.
type Service interface {
	List(ctx context.Context, filter Filter) (Page, error)
	ByID(ctx context.Context, id string) (Event, error)
	Search(ctx context.Context, query string, near *weather.Coordinates) ([]Event, error)
	Categories() []CategoryInfo
}

type service struct {
	cfg    Config
	events []Event
	logger *slog.Logger
}

// NewService wires up the events domain with the built-in event listing.
// Event times are anchored to now.
func NewService(cfg Config, logger *slog.Logger, now func() time.Time) Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		cfg:    cfg,
		events: materialize(seedEvents, now().UTC()),
		logger: logger.With("component", "events.service"),
	}
}

func materialize(seeds []seedEvent, anchor time.Time) []Event {
	out := make([]Event, 0, len(seeds))
	for _, seed := range seeds {
		e := cloneEvent(seed.event)
		e.ID = uuid.NewString()
		e.StartTime = anchor.Add(seed.start)
		if seed.end > 0 {
			end := anchor.Add(seed.end)
			e.EndTime = &end
		}
		out = append(out, e)
	}
	return out
}

func (s *service) List(ctx context.Context, filter Filter) (Page, error) {
	category := Category(strings.ToLower(strings.TrimSpace(filter.Category)))
	if category != "" && !category.Valid() {
		return Page{}, apperrors.Wrap(apperrors.CodeInvalidInput, "unknown event category "+filter.Category, nil)
	}
	if filter.RadiusKm < 0 {
		return Page{}, apperrors.Wrap(apperrors.CodeInvalidInput, "radius must not be negative", nil)
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	matched := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		if category != "" && e.Category != category {
			continue
		}
		if filter.IsFree != nil && e.IsFree != *filter.IsFree {
			continue
		}
		if filter.IsIndoor != nil && e.Outdoor() == *filter.IsIndoor {
			continue
		}
		e = withDistance(cloneEvent(e), filter.Near)
		if filter.RadiusKm > 0 && e.Venue.DistanceKm != nil && *e.Venue.DistanceKm > filter.RadiusKm {
			continue
		}
		matched = append(matched, e)
	}
	sortByStart(matched)

	total := len(matched)
	// page may be any positive int; compare before multiplying.
	start := total
	if page-1 <= total/s.cfg.PageSize {
		start = min((page-1)*s.cfg.PageSize, total)
	}
	end := start + s.cfg.PageSize
	if end > total {
		end = total
	}
	s.logger.Debug("events listed", "category", category, "total", total, "page", page)
	return Page{
		Events:  matched[start:end],
		Total:   total,
		Page:    page,
		HasMore: end < total,
	}, nil
}

func (s *service) ByID(ctx context.Context, id string) (Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return cloneEvent(e), nil
		}
	}
	return Event{}, apperrors.Wrap(apperrors.CodeNotFound, "event not found", nil)
}

func (s *service) Search(ctx context.Context, query string, near *weather.Coordinates) ([]Event, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "query cannot be empty", nil)
	}
	out := make([]Event, 0)
	for _, e := range s.events {
		if matchesQuery(e, needle) {
			out = append(out, withDistance(cloneEvent(e), near))
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *service) Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryInfo))
	copy(out, categoryInfo)
	return out
}

func matchesQuery(e Event, needle string) bool {
	if strings.Contains(strings.ToLower(e.Name), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func withDistance(e Event, near *weather.Coordinates) Event {
	if near == nil {
		return e
	}
	km := math.Round(haversineKm(*near, weather.Coordinates{Latitude: e.Venue.Latitude, Longitude: e.Venue.Longitude})*10) / 10
	e.Venue.DistanceKm = &km
	return e
}

func sortByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
}

func cloneEvent(e Event) Event {
	e.Tags = append([]string(nil), e.Tags...)
	if e.EndTime != nil {
		end := *e.EndTime
		e.EndTime = &end
	}
	if e.Venue.DistanceKm != nil {
		d := *e.Venue.DistanceKm
		e.Venue.DistanceKm = &d
	}
	return e
}
