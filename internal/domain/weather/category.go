// Package weather normalizes provider condition labels into categories and
// holds the weather observation types consumed by the scoring packages.
package weather

import "strings"

// Category is the normalized weather condition bucket used for every scoring decision.
type Category string

const (
	Clear        Category = "clear"
	Clouds       Category = "clouds"
	Rain         Category = "rain"
	Drizzle      Category = "drizzle"
	Thunderstorm Category = "thunderstorm"
	Snow         Category = "snow"
	Mist         Category = "mist"
	Fog          Category = "fog"
	Haze         Category = "haze"
	Dust         Category = "dust"
	Sand         Category = "sand"
	Ash          Category = "ash"
	Squall       Category = "squall"
	Tornado      Category = "tornado"
)

var allCategories = []Category{
	Clear, Clouds, Rain, Drizzle, Thunderstorm, Snow, Mist,
	Fog, Haze, Dust, Sand, Ash, Squall, Tornado,
}

var labelTable = func() map[string]Category {
	table := make(map[string]Category, len(allCategories))
	for _, c := range allCategories {
		table[string(c)] = c
	}
	return table
}()

// AllCategories lists every category in declaration order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	_, ok := labelTable[string(c)]
	return ok
}

// Classify maps a provider condition label to a category. Matching is an exact,
// case-insensitive lookup; anything unrecognized is treated as clear.
func Classify(label string) Category {
	if c, ok := labelTable[strings.ToLower(label)]; ok {
		return c
	}
	return Clear
}

// ParseCategory is the strict variant of Classify used for user input.
func ParseCategory(value string) (Category, bool) {
	c, ok := labelTable[strings.ToLower(strings.TrimSpace(value))]
	return c, ok
}

// IsOutdoorFavorable reports whether the category favors outdoor plans.
func IsOutdoorFavorable(c Category) bool {
	switch c {
	case Clear, Clouds:
		return true
	default:
		return false
	}
}

// PrimaryCategory classifies the first condition of a provider-ordered list.
// Providers return conditions by priority, so index 0 is authoritative and the
// remaining entries are never blended in.
func PrimaryCategory(conditions []Condition) Category {
	if len(conditions) == 0 {
		return Clear
	}
	return Classify(conditions[0].Main)
}
