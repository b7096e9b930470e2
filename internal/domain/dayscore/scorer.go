package dayscore

import (
	"sort"

	"github.com/yanqian/weather-planner/internal/domain/activity"
	"github.com/yanqian/weather-planner/internal/domain/weather"
)

const (
	startScore    = 100
	minScore      = 0
	maxScore      = 100
	maxReasons    = 3
	maxActivities = 5
)

// Reason texts attached to scored days.
const (
	ReasonPerfectTemperature = "Perfect temperature"
	ReasonExtremeTemperature = "Extreme temperature"
	ReasonHighRainChance     = "High rain chance"
	ReasonSomeRain           = "Some rain expected"
	ReasonNoRain             = "No rain expected"
	ReasonClearSkies         = "Clear skies"
	ReasonPartlyCloudy       = "Partly cloudy"
	ReasonRainy              = "Rainy conditions"
	ReasonSnowy              = "Snowy conditions"
	ReasonWindy              = "Windy"
	ReasonHighHumidity       = "High humidity"
)

type dayFacts struct {
	avgTemp  float64
	pop      float64
	category weather.Category
	wind     float64
	humidity float64
}

type rule struct {
	reason  string
	delta   int
	applies func(dayFacts) bool
}

// Rules apply in order and are not exclusive; reasons are reported in the same order.
var rules = []rule{
	{ReasonPerfectTemperature, 20, func(d dayFacts) bool { return d.avgTemp >= 18 && d.avgTemp <= 25 }},
	{ReasonExtremeTemperature, -30, func(d dayFacts) bool { return d.avgTemp < 10 || d.avgTemp > 32 }},
	{ReasonHighRainChance, -40, func(d dayFacts) bool { return d.pop > 0.7 }},
	{ReasonSomeRain, -20, func(d dayFacts) bool { return d.pop > 0.3 && d.pop <= 0.7 }},
	{ReasonNoRain, 15, func(d dayFacts) bool { return d.pop < 0.1 }},
	{ReasonClearSkies, 25, func(d dayFacts) bool { return d.category == weather.Clear }},
	{ReasonPartlyCloudy, 10, func(d dayFacts) bool { return d.category == weather.Clouds }},
	{ReasonRainy, -40, func(d dayFacts) bool {
		return d.category == weather.Rain || d.category == weather.Thunderstorm
	}},
	{ReasonSnowy, -20, func(d dayFacts) bool { return d.category == weather.Snow }},
	{ReasonWindy, -15, func(d dayFacts) bool { return d.wind > 10 }},
	{ReasonHighHumidity, -10, func(d dayFacts) bool { return d.humidity > 85 }},
}

// Scorer rates forecast days. It is safe for concurrent use.
type Scorer struct {
	catalog *activity.Catalog
}

// NewScorer builds a scorer that pairs days with activities from catalog.
func NewScorer(catalog *activity.Catalog) *Scorer {
	return &Scorer{catalog: catalog}
}

// ScoreDay rates a single day on a 0-100 scale.
func (s *Scorer) ScoreDay(f weather.DailyForecast) DayScore {
	category := weather.PrimaryCategory(f.Conditions)
	facts := dayFacts{
		avgTemp:  (f.TempMin + f.TempMax) / 2,
		pop:      f.Pop,
		category: category,
		wind:     f.WindSpeed,
		humidity: f.Humidity,
	}

	total := startScore
	reasons := make([]string, 0, maxReasons)
	extreme := false
	for _, r := range rules {
		if !r.applies(facts) {
			continue
		}
		total += r.delta
		switch r.reason {
		case ReasonExtremeTemperature:
			extreme = true
		case ReasonSnowy:
			// the temperature reason already covers a snowy extreme day
			if extreme {
				continue
			}
		}
		reasons = append(reasons, r.reason)
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	score := clamp(total, minScore, maxScore)
	return DayScore{
		Forecast:   f,
		Score:      score,
		Band:       Band(score),
		Reasons:    reasons,
		Activities: s.activitiesFor(category),
	}
}

// RankDays scores every day and orders them best first. Ties keep input order.
// The first input day is flagged as today regardless of its rank.
func (s *Scorer) RankDays(forecasts []weather.DailyForecast) []DayScore {
	out := make([]DayScore, 0, len(forecasts))
	for i, f := range forecasts {
		ds := s.ScoreDay(f)
		ds.Index = i
		ds.IsToday = i == 0
		out = append(out, ds)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// BestDay returns the top ranked day, or false when there are no forecasts.
func (s *Scorer) BestDay(forecasts []weather.DailyForecast) (DayScore, bool) {
	ranked := s.RankDays(forecasts)
	if len(ranked) == 0 {
		return DayScore{}, false
	}
	return ranked[0], true
}

func (s *Scorer) activitiesFor(c weather.Category) []activity.Activity {
	if s.catalog == nil {
		return []activity.Activity{}
	}
	items := s.catalog.ByWeather(c)
	if len(items) > maxActivities {
		items = items[:maxActivities]
	}
	return items
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
