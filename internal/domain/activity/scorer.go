package activity

import (
	"sort"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

const (
	baseMatchScore   = 50
	weatherBiasBonus = 30
	familyBonus      = 10
	freeBonus        = 10
	minMatchScore    = 0
	maxMatchScore    = 100
)

// Filter values accepted by FilterByCategory besides activity categories.
const (
	FilterAll     = "all"
	FilterIndoor  = "indoor"
	FilterOutdoor = "outdoor"
)

// Suggest ranks the activities viable in category, best match first. Equal scores keep
// catalog order. A non-positive limit yields an empty list.
func (c *Catalog) Suggest(category weather.Category, limit int) []Suggestion {
	if limit <= 0 {
		return []Suggestion{}
	}
	favorable := weather.IsOutdoorFavorable(category)
	candidates := c.ByWeather(category)
	out := make([]Suggestion, 0, len(candidates))
	for _, a := range candidates {
		out = append(out, Suggestion{
			Activity:   a,
			Reason:     Reason(category, a.Category),
			MatchScore: MatchScore(a, favorable),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MatchScore scores one activity against the weather's indoor/outdoor bias.
func MatchScore(a Activity, outdoorFavorable bool) int {
	score := baseMatchScore
	if outdoorFavorable != a.Indoor {
		score += weatherBiasBonus
	}
	if a.FamilyFriendly {
		score += familyBonus
	}
	if a.PriceRange == PriceFree {
		score += freeBonus
	}
	return clamp(score, minMatchScore, maxMatchScore)
}

// FilterByCategory narrows suggestions by "all", "indoor", "outdoor" or an
// activity category. Unrecognised filters match nothing.
func FilterByCategory(suggestions []Suggestion, filter string) []Suggestion {
	if filter == FilterAll {
		return suggestions
	}
	out := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if matchesFilter(s.Activity, filter) {
			out = append(out, s)
		}
	}
	return out
}

func matchesFilter(a Activity, filter string) bool {
	switch filter {
	case FilterIndoor:
		return a.Indoor
	case FilterOutdoor:
		return !a.Indoor
	default:
		return string(a.Category) == filter
	}
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
