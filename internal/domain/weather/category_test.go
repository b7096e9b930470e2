package weather

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"Clear", Clear},
		{"CLOUDS", Clouds},
		{"rain", Rain},
		{"Drizzle", Drizzle},
		{"Thunderstorm", Thunderstorm},
		{"Snow", Snow},
		{"Mist", Mist},
		{"Fog", Fog},
		{"Haze", Haze},
		{"Dust", Dust},
		{"Sand", Sand},
		{"Ash", Ash},
		{"Squall", Squall},
		{"Tornado", Tornado},
		{"", Clear},
		{"Smoke", Clear},
		{" rain", Clear},
		{"light rain", Clear},
		{"\x00garbage", Clear},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Classify(tc.label), "label %q", tc.label)
	}
}

func TestClassifyAlwaysReturnsDeclaredCategory(t *testing.T) {
	inputs := []string{"", "ÜNKNOWN", "clouds ", "🌧️", "thunder", "snowy", "clear sky"}
	for _, in := range inputs {
		require.True(t, Classify(in).Valid(), "input %q", in)
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory(" Rain ")
	require.True(t, ok)
	require.Equal(t, Rain, c)

	_, ok = ParseCategory("sunny")
	require.False(t, ok)
}

func TestIsOutdoorFavorable(t *testing.T) {
	for _, c := range AllCategories() {
		want := c == Clear || c == Clouds
		require.Equal(t, want, IsOutdoorFavorable(c), "category %s", c)
	}
}

func TestPrimaryCategoryFirstElementWins(t *testing.T) {
	require.Equal(t, Clear, PrimaryCategory(nil))
	require.Equal(t, Clear, PrimaryCategory([]Condition{}))

	conds := []Condition{{Main: "Drizzle"}, {Main: "Thunderstorm"}, {Main: "Thunderstorm"}}
	require.Equal(t, Drizzle, PrimaryCategory(conds))
}

func TestAllCategoriesIsACopy(t *testing.T) {
	first := AllCategories()
	require.Len(t, first, 14)
	first[0] = Tornado
	require.Equal(t, Clear, AllCategories()[0])
}
