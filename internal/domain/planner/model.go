package planner

import (
	"github.com/yanqian/weather-planner/internal/domain/activity"
	"github.com/yanqian/weather-planner/internal/domain/dayscore"
	"github.com/yanqian/weather-planner/internal/domain/events"
	"github.com/yanqian/weather-planner/internal/domain/timeline"
	"github.com/yanqian/weather-planner/internal/domain/weather"
)

// Unit systems accepted from callers.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// LocationRequest identifies where to plan for. Leaving both coordinates unset
// selects the configured default location.
type LocationRequest struct {
	Latitude  *float64
	Longitude *float64
	Units     string
}

// GeocodeRequest resolves either a place name or a coordinate pair.
type GeocodeRequest struct {
	Query     string
	Latitude  *float64
	Longitude *float64
	Limit     int
}

// SuggestionRequest asks for ranked activities. Weather overrides the observed
// conditions; Category narrows results with the activity filter values.
type SuggestionRequest struct {
	Location LocationRequest
	Weather  string
	Category string
	Limit    int
}

// WeatherView decorates current conditions with display metadata.
type WeatherView struct {
	Current          weather.Current  `json:"current"`
	Category         weather.Category `json:"category"`
	Icon             string           `json:"icon"`
	Message          string           `json:"message"`
	Background       string           `json:"background"`
	Wind             string           `json:"wind"`
	OutdoorFavorable bool             `json:"outdoorFavorable"`
}

// SuggestionsView is a ranked suggestion list for one weather category.
type SuggestionsView struct {
	Category    weather.Category      `json:"category"`
	Suggestions []activity.Suggestion `json:"suggestions"`
	IsMock      bool                  `json:"isMock,omitempty"`
}

// BestDaysView ranks forecast days.
type BestDaysView struct {
	Days   []dayscore.DayScore `json:"days"`
	Best   *dayscore.DayScore  `json:"best,omitempty"`
	IsMock bool                `json:"isMock,omitempty"`
}

// TimelineView classifies the coming hours.
type TimelineView struct {
	Slots    []timeline.Slot `json:"slots"`
	Best     *timeline.Slot  `json:"best,omitempty"`
	BestTime string          `json:"bestTime,omitempty"`
	IsMock   bool            `json:"isMock,omitempty"`
}

// PlanView is everything needed to plan the day at one location.
type PlanView struct {
	Weather     WeatherView           `json:"weather"`
	Suggestions []activity.Suggestion `json:"suggestions"`
	BestDays    BestDaysView          `json:"bestDays"`
	Timeline    TimelineView          `json:"timeline"`
	AirQuality  *weather.AirQuality   `json:"airQuality,omitempty"`
	Events      []events.Event        `json:"events"`
	IsMock      bool                  `json:"isMock,omitempty"`
}
