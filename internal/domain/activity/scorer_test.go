package activity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

func ids(suggestions []Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Activity.ID)
	}
	return out
}

func TestSuggestRainPrefersIndoor(t *testing.T) {
	catalog, err := NewCatalog([]Activity{
		{ID: "walk", Category: CategoryOutdoor, SuitableWeather: []weather.Category{weather.Rain}},
		{ID: "gallery", Category: CategoryOutdoor, Indoor: true, SuitableWeather: []weather.Category{weather.Rain}},
	})
	require.NoError(t, err)

	got := catalog.Suggest(weather.Rain, 10)
	require.Equal(t, []string{"gallery", "walk"}, ids(got))
	require.Equal(t, 80, got[0].MatchScore)
	require.Equal(t, 50, got[1].MatchScore)
}

func TestSuggestClearPrefersOutdoor(t *testing.T) {
	got := DefaultCatalog().Suggest(weather.Clear, 3)
	require.Equal(t, []string{"park-picnic", "nature-hike", "bike-ride"}, ids(got))
	for _, s := range got {
		require.Equal(t, 100, s.MatchScore)
		require.Equal(t, "Perfect sunny weather. "+mustBenefit(t, s.Activity.Category)+".", s.Reason)
	}
}

func TestSuggestDefaultCatalogRain(t *testing.T) {
	got := DefaultCatalog().Suggest(weather.Rain, 3)
	require.Equal(t, []string{"art-gallery", "library-visit", "museum-visit"}, ids(got))
	require.Equal(t, "Stay dry and cozy. Expand your horizons.", got[0].Reason)
}

func TestSuggestOrderingAndLimit(t *testing.T) {
	catalog := DefaultCatalog()
	for _, c := range weather.AllCategories() {
		for _, limit := range []int{1, 6, 12, 100} {
			got := catalog.Suggest(c, limit)
			require.LessOrEqual(t, len(got), limit)
			for i := 1; i < len(got); i++ {
				require.GreaterOrEqual(t, got[i-1].MatchScore, got[i].MatchScore)
			}
			for _, s := range got {
				require.GreaterOrEqual(t, s.MatchScore, 0)
				require.LessOrEqual(t, s.MatchScore, 100)
				require.True(t, s.Activity.SuitableFor(c))
			}
		}
	}
}

func TestSuggestTiesKeepCatalogOrder(t *testing.T) {
	catalog, err := NewCatalog([]Activity{
		{ID: "b", Category: CategoryFood, Indoor: true, SuitableWeather: []weather.Category{weather.Snow}},
		{ID: "a", Category: CategoryFood, Indoor: true, SuitableWeather: []weather.Category{weather.Snow}},
		{ID: "c", Category: CategoryFood, Indoor: true, FamilyFriendly: true, SuitableWeather: []weather.Category{weather.Snow}},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "a"}, ids(catalog.Suggest(weather.Snow, 5)))
}

func TestSuggestNonPositiveLimit(t *testing.T) {
	require.Empty(t, DefaultCatalog().Suggest(weather.Clear, 0))
	require.Empty(t, DefaultCatalog().Suggest(weather.Clear, -1))
}

func TestMatchScore(t *testing.T) {
	a := Activity{Indoor: true, FamilyFriendly: true, PriceRange: PriceFree}
	require.Equal(t, 100, MatchScore(a, false))
	require.Equal(t, 70, MatchScore(a, true))

	b := Activity{PriceRange: PriceHigh}
	require.Equal(t, 80, MatchScore(b, true))
	require.Equal(t, 50, MatchScore(b, false))
}

func TestReasonDefaults(t *testing.T) {
	require.Equal(t, "Great for today. Enjoy your day.", Reason("meteor", "gaming"))
	require.Equal(t, "Stay safe inside. Boost your energy.", Reason(weather.Tornado, CategoryFitness))
}

func TestReasonTablesAreExhaustive(t *testing.T) {
	for _, c := range weather.AllCategories() {
		_, ok := weatherReason(c)
		require.True(t, ok, "weather reason missing for %s", c)
	}
	for _, c := range Categories() {
		_, ok := categoryBenefit(c)
		require.True(t, ok, "benefit missing for %s", c)
	}
}

func TestFilterByCategory(t *testing.T) {
	suggestions := DefaultCatalog().Suggest(weather.Clouds, 100)
	require.NotEmpty(t, suggestions)

	require.Equal(t, suggestions, FilterByCategory(suggestions, FilterAll))

	indoor := FilterByCategory(suggestions, FilterIndoor)
	outdoor := FilterByCategory(suggestions, FilterOutdoor)
	require.NotEmpty(t, indoor)
	require.NotEmpty(t, outdoor)
	require.Equal(t, len(suggestions), len(indoor)+len(outdoor))
	for _, s := range indoor {
		require.True(t, s.Activity.Indoor)
	}

	food := FilterByCategory(suggestions, string(CategoryFood))
	require.NotEmpty(t, food)
	for _, s := range food {
		require.Equal(t, CategoryFood, s.Activity.Category)
	}

	require.Empty(t, FilterByCategory(suggestions, "underwater"))
}

func TestFilterEmptyIsEmpty(t *testing.T) {
	for _, filter := range []string{FilterAll, FilterIndoor, FilterOutdoor, "food", "bogus"} {
		require.Empty(t, FilterByCategory([]Suggestion{}, filter))
	}
}

func mustBenefit(t *testing.T, c Category) string {
	t.Helper()
	b, ok := categoryBenefit(c)
	require.True(t, ok)
	return b
}
