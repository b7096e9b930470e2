package dayscore

import (
	"github.com/yanqian/weather-planner/internal/domain/activity"
	"github.com/yanqian/weather-planner/internal/domain/weather"
)

// DayScore is the suitability verdict for one forecast day.
type DayScore struct {
	Forecast   weather.DailyForecast `json:"forecast"`
	Index      int                   `json:"index"`
	IsToday    bool                  `json:"isToday"`
	Score      int                   `json:"score"`
	Band       string                `json:"band"`
	Reasons    []string              `json:"reasons"`
	Activities []activity.Activity   `json:"activities"`
}

// Score bands used for display.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPoor      = "poor"
)

// Band buckets a score for display.
func Band(score int) string {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandFair
	default:
		return BandPoor
	}
}
