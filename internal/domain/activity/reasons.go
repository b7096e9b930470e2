package activity

import "github.com/yanqian/weather-planner/internal/domain/weather"

const (
	defaultWeatherReason   = "Great for today"
	defaultCategoryBenefit = "Enjoy your day"
)

// Reason builds the explanation attached to a suggestion.
func Reason(c weather.Category, category Category) string {
	lead, ok := weatherReason(c)
	if !ok {
		lead = defaultWeatherReason
	}
	benefit, ok := categoryBenefit(category)
	if !ok {
		benefit = defaultCategoryBenefit
	}
	return lead + ". " + benefit + "."
}

func weatherReason(c weather.Category) (string, bool) {
	switch c {
	case weather.Clear:
		return "Perfect sunny weather", true
	case weather.Clouds:
		return "Nice weather with light clouds", true
	case weather.Rain:
		return "Stay dry and cozy", true
	case weather.Drizzle:
		return "Escape the light rain", true
	case weather.Thunderstorm:
		return "Safe from the storm", true
	case weather.Snow:
		return "Embrace the winter", true
	case weather.Mist:
		return "Good visibility indoors", true
	case weather.Fog:
		return "Avoid low visibility", true
	case weather.Haze:
		return "Better air quality indoors", true
	case weather.Dust:
		return "Cleaner environment", true
	case weather.Sand:
		return "Protected from particles", true
	case weather.Ash:
		return "Safe indoor air", true
	case weather.Squall:
		return "Shelter from winds", true
	case weather.Tornado:
		return "Stay safe inside", true
	}
	return "", false
}

func categoryBenefit(c Category) (string, bool) {
	switch c {
	case CategoryOutdoor:
		return "Great for fresh air", true
	case CategoryIndoor:
		return "Perfect indoor escape", true
	case CategoryCultural:
		return "Expand your horizons", true
	case CategorySports:
		return "Stay active and healthy", true
	case CategoryRelaxation:
		return "Unwind and recharge", true
	case CategoryFood:
		return "Treat your taste buds", true
	case CategoryShopping:
		return "Retail therapy awaits", true
	case CategoryEntertainment:
		return "Fun and excitement", true
	case CategoryNature:
		return "Connect with nature", true
	case CategoryFitness:
		return "Boost your energy", true
	}
	return "", false
}
