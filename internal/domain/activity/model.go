package activity

import "github.com/yanqian/weather-planner/internal/domain/weather"

// Category groups activities for filtering and reason generation.
type Category string

const (
	CategoryOutdoor       Category = "outdoor"
	CategoryIndoor        Category = "indoor"
	CategoryCultural      Category = "cultural"
	CategorySports        Category = "sports"
	CategoryRelaxation    Category = "relaxation"
	CategoryFood          Category = "food"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryNature        Category = "nature"
	CategoryFitness       Category = "fitness"
)

var allCategories = []Category{
	CategoryOutdoor, CategoryIndoor, CategoryCultural, CategorySports, CategoryRelaxation,
	CategoryFood, CategoryShopping, CategoryEntertainment, CategoryNature, CategoryFitness,
}

// Categories lists every activity category in declaration order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Valid reports whether c is a declared category.
func (c Category) Valid() bool {
	for _, candidate := range allCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// Intensity is the physical effort an activity asks for.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// PriceRange is an optional cost tier; the zero value means unknown.
type PriceRange string

const (
	PriceFree     PriceRange = "free"
	PriceLow      PriceRange = "$"
	PriceMedium   PriceRange = "$$"
	PriceHigh     PriceRange = "$$$"
	PriceUnlisted PriceRange = ""
)

// Activity is an immutable catalog entry.
type Activity struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Icon            string             `json:"icon"`
	Category        Category           `json:"category"`
	Intensity       Intensity          `json:"intensity"`
	Duration        string             `json:"duration"`
	SuitableWeather []weather.Category `json:"suitableWeather"`
	Tags            []string           `json:"tags"`
	Indoor          bool               `json:"indoor"`
	FamilyFriendly  bool               `json:"familyFriendly"`
	PriceRange      PriceRange         `json:"priceRange,omitempty"`
}

// SuitableFor reports whether the activity lists c among its viable weather.
func (a Activity) SuitableFor(c weather.Category) bool {
	for _, w := range a.SuitableWeather {
		if w == c {
			return true
		}
	}
	return false
}

// Suggestion pairs an activity with its match score for the current weather.
type Suggestion struct {
	Activity   Activity `json:"activity"`
	Reason     string   `json:"reason"`
	MatchScore int      `json:"matchScore"`
	BestTime   string   `json:"bestTime,omitempty"`
}
