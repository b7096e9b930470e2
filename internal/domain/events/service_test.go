package events

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-planner/internal/domain/weather"
	apperrors "github.com/yanqian/weather-planner/pkg/errors"
)

var anchor = time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

func newTestService(pageSize int) Service {
	return NewService(Config{PageSize: pageSize}, slog.New(slog.NewTextHandler(io.Discard, nil)), func() time.Time { return anchor })
}

func names(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Name)
	}
	return out
}

func boolPtr(v bool) *bool { return &v }

func TestListSortsByStartAndPaginates(t *testing.T) {
	svc := newTestService(10)

	first, err := svc.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Equal(t, 12, first.Total)
	require.Len(t, first.Events, 10)
	require.True(t, first.HasMore)
	require.Equal(t, 1, first.Page)
	require.Equal(t, "Modern Art Exhibition", first.Events[0].Name)
	require.Equal(t, anchor.Add(time.Hour), first.Events[0].StartTime)
	for i := 1; i < len(first.Events); i++ {
		require.False(t, first.Events[i].StartTime.Before(first.Events[i-1].StartTime))
	}

	second, err := svc.List(context.Background(), Filter{Page: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"Rooftop DJ Night", "Broadway Musical Workshop"}, names(second.Events))
	require.False(t, second.HasMore)

	beyond, err := svc.List(context.Background(), Filter{Page: 9})
	require.NoError(t, err)
	require.Empty(t, beyond.Events)
	require.False(t, beyond.HasMore)

	huge, err := svc.List(context.Background(), Filter{Page: math.MaxInt})
	require.NoError(t, err)
	require.Empty(t, huge.Events)
	require.Equal(t, 12, huge.Total)
	require.False(t, huge.HasMore)
}

func TestListFilters(t *testing.T) {
	svc := newTestService(50)
	ctx := context.Background()

	indoor, err := svc.List(ctx, Filter{IsIndoor: boolPtr(true)})
	require.NoError(t, err)
	require.Equal(t, 8, indoor.Total)
	for _, e := range indoor.Events {
		require.False(t, e.Outdoor())
	}

	outdoor, err := svc.List(ctx, Filter{IsIndoor: boolPtr(false)})
	require.NoError(t, err)
	require.Equal(t, []string{"Food Truck Festival", "Local Basketball Tournament", "Farmers Market Weekend", "Community Yoga in the Park"}, names(outdoor.Events))

	free, err := svc.List(ctx, Filter{IsFree: boolPtr(true)})
	require.NoError(t, err)
	require.Equal(t, 6, free.Total)

	music, err := svc.List(ctx, Filter{Category: "Music"})
	require.NoError(t, err)
	require.Equal(t, []string{"Jazz Night at Blue Note"}, names(music.Events))

	none, err := svc.List(ctx, Filter{Category: "outdoor"})
	require.NoError(t, err)
	require.Empty(t, none.Events)

	_, err = svc.List(ctx, Filter{Category: "karaoke"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestListRadius(t *testing.T) {
	svc := newTestService(50)
	unionSquare := weather.Coordinates{Latitude: 40.7359, Longitude: -73.9911}

	page, err := svc.List(context.Background(), Filter{Near: &unionSquare, RadiusKm: 2})
	require.NoError(t, err)
	require.Equal(t, []string{
		"Jazz Night at Blue Note",
		"Indie Film Screening",
		"Local Basketball Tournament",
		"Farmers Market Weekend",
		"Rooftop DJ Night",
	}, names(page.Events))
	for _, e := range page.Events {
		require.NotNil(t, e.Venue.DistanceKm)
		require.LessOrEqual(t, *e.Venue.DistanceKm, 2.0)
	}

	all, err := svc.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Nil(t, all.Events[0].Venue.DistanceKm)
}

func TestByID(t *testing.T) {
	svc := newTestService(10)
	page, err := svc.List(context.Background(), Filter{})
	require.NoError(t, err)

	got, err := svc.ByID(context.Background(), page.Events[3].ID)
	require.NoError(t, err)
	require.Equal(t, page.Events[3].Name, got.Name)

	_, err = svc.ByID(context.Background(), "missing")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestSearch(t *testing.T) {
	svc := newTestService(10)

	got, err := svc.Search(context.Background(), "MUSEUM", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"Science Museum Open Day", "Kids Adventure Day"}, names(got))

	_, err = svc.Search(context.Background(), "  ", nil)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestCategories(t *testing.T) {
	cats := newTestService(10).Categories()
	require.Len(t, cats, 14)
	require.Equal(t, CategoryMusic, cats[0].ID)
	require.Equal(t, "Other", cats[13].Label)
}

func TestHaversine(t *testing.T) {
	nyc := weather.Coordinates{Latitude: 40.7128, Longitude: -74.006}
	london := weather.Coordinates{Latitude: 51.5072, Longitude: -0.1276}
	require.InDelta(t, 5570, haversineKm(nyc, london), 10)
	require.Zero(t, haversineKm(nyc, nyc))
}
