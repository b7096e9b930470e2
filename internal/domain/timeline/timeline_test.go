package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

const (
	sunrise int64 = 1719820800
	sunset  int64 = 1719874800
)

func hour(ts int64, main string, pop float64) weather.HourlyForecast {
	return weather.HourlyForecast{
		Time:       ts,
		Conditions: []weather.Condition{{Main: main}},
		Pop:        pop,
	}
}

func TestClassifySlotTiers(t *testing.T) {
	noon := sunrise + 6*3600
	cases := []struct {
		main string
		pop  float64
		want Window
	}{
		{"Clear", 0, Optimal},
		{"Clear", 0.6, Good},
		{"Clouds", 0.2, Good},
		{"Clouds", 0.6, Fair},
		{"Drizzle", 0, Fair},
		{"Mist", 0.51, Poor},
		{"Rain", 0, Poor},
		{"Thunderstorm", 0.9, Poor},
		{"Snow", 0.1, Poor},
		{"Haze", 0.5, Optimal},
		{"", 0, Optimal},
		{"Light Rain", 0, Poor},
		{"Freezing Rain", 0, Poor},
		{"Snow Showers", 0, Poor},
		{"Rain and Snow", 0, Poor},
		{"Broken Clouds", 0, Good},
		{"Patchy Mist", 0, Fair},
		{"THUNDER", 0, Poor},
	}
	for _, tc := range cases {
		got := ClassifySlot(hour(noon, tc.main, tc.pop), sunrise, sunset)
		require.Equal(t, tc.want, got.ActivityWindow, "%s pop=%v", tc.main, tc.pop)
		require.Equal(t, Label(tc.want), got.Label)
	}
}

func TestClassifySlotDayBoundsAreStrict(t *testing.T) {
	require.False(t, ClassifySlot(hour(sunrise, "Clear", 0), sunrise, sunset).IsDay)
	require.True(t, ClassifySlot(hour(sunrise+1, "Clear", 0), sunrise, sunset).IsDay)
	require.True(t, ClassifySlot(hour(sunset-1, "Clear", 0), sunrise, sunset).IsDay)
	require.False(t, ClassifySlot(hour(sunset, "Clear", 0), sunrise, sunset).IsDay)
}

func TestDegrade(t *testing.T) {
	require.Equal(t, Good, Degrade(Optimal))
	require.Equal(t, Fair, Degrade(Good))
	require.Equal(t, Poor, Degrade(Fair))
	require.Equal(t, Poor, Degrade(Poor))
}

func TestBestWindow(t *testing.T) {
	hours := []weather.HourlyForecast{
		hour(sunrise-3600, "Clear", 0),
		hour(sunrise+3600, "Rain", 0.8),
		hour(sunrise+7200, "Clear", 0.1),
		hour(sunrise+10800, "Clear", 0),
	}
	slots := Classify(hours, sunrise, sunset)
	require.Len(t, slots, 4)

	best, ok := BestWindow(slots)
	require.True(t, ok)
	require.Equal(t, sunrise+7200, best.Forecast.Time)
}

func TestBestWindowNone(t *testing.T) {
	slots := Classify([]weather.HourlyForecast{
		hour(sunset+3600, "Clear", 0),
		hour(sunrise+3600, "Clouds", 0),
	}, sunrise, sunset)
	_, ok := BestWindow(slots)
	require.False(t, ok)

	_, ok = BestWindow(nil)
	require.False(t, ok)
}
