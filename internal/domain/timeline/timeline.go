package timeline

import (
	"strings"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

// Window is the outdoor quality tier of one forecast hour.
type Window string

const (
	Optimal Window = "optimal"
	Good    Window = "good"
	Fair    Window = "fair"
	Poor    Window = "poor"
)

const degradePop = 0.5

// Slot is one classified forecast hour.
type Slot struct {
	Forecast       weather.HourlyForecast `json:"forecast"`
	IsDay          bool                   `json:"isDay"`
	ActivityWindow Window                 `json:"activityWindow"`
	Label          string                 `json:"label"`
}

type keywordTier struct {
	keywords []string
	window   Window
}

// Checked in order; the first group with a matching keyword wins.
var keywordTiers = []keywordTier{
	{keywords: []string{"rain", "thunder", "snow"}, window: Poor},
	{keywords: []string{"drizzle", "mist"}, window: Fair},
	{keywords: []string{"cloud"}, window: Good},
}

// Degrade lowers w by one tier. Poor stays poor.
func Degrade(w Window) Window {
	switch w {
	case Optimal:
		return Good
	case Good:
		return Fair
	default:
		return Poor
	}
}

// ClassifySlot rates one hour. Hours exactly at sunrise or sunset count as night.
func ClassifySlot(h weather.HourlyForecast, sunrise, sunset int64) Slot {
	w := baseWindow(primaryLabel(h.Conditions))
	if h.Pop > degradePop {
		w = Degrade(w)
	}
	return Slot{
		Forecast:       h,
		IsDay:          sunrise < h.Time && h.Time < sunset,
		ActivityWindow: w,
		Label:          Label(w),
	}
}

// Classify rates every hour, preserving order.
func Classify(hours []weather.HourlyForecast, sunrise, sunset int64) []Slot {
	out := make([]Slot, 0, len(hours))
	for _, h := range hours {
		out = append(out, ClassifySlot(h, sunrise, sunset))
	}
	return out
}

// BestWindow returns the first daytime slot rated optimal.
func BestWindow(slots []Slot) (Slot, bool) {
	for _, s := range slots {
		if s.IsDay && s.ActivityWindow == Optimal {
			return s, true
		}
	}
	return Slot{}, false
}

// Label is the display text for a tier.
func Label(w Window) string {
	switch w {
	case Optimal:
		return "Perfect for outdoors"
	case Good:
		return "Good conditions"
	case Fair:
		return "Fair, check forecast"
	default:
		return "Indoor activities recommended"
	}
}

// primaryLabel is the lowercased raw Main label of the first condition.
func primaryLabel(conditions []weather.Condition) string {
	if len(conditions) == 0 {
		return ""
	}
	return strings.ToLower(conditions[0].Main)
}

func baseWindow(name string) Window {
	for _, tier := range keywordTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(name, kw) {
				return tier.window
			}
		}
	}
	return Optimal
}
