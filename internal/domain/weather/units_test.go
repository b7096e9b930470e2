package weather

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatTemperature(t *testing.T) {
	require.Equal(t, "22°C", FormatTemperature(21.6, "C"))
	require.Equal(t, "72°F", FormatTemperature(22, "F"))
	require.Equal(t, "-3°C", FormatTemperature(-3.2, ""))
}

func TestWindDescription(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0, "Calm"},
		{1, "Light air"},
		{3, "Light breeze"},
		{5, "Gentle breeze"},
		{7, "Moderate breeze"},
		{10, "Fresh breeze"},
		{12, "Strong breeze"},
		{15, "Near gale"},
		{19, "Gale"},
		{23, "Strong gale"},
		{30, "Storm"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, WindDescription(tc.speed), "speed %.1f", tc.speed)
	}
}

func TestUVIndexLevel(t *testing.T) {
	require.Equal(t, "Low", UVIndexLevel(2))
	require.Equal(t, "Moderate", UVIndexLevel(5))
	require.Equal(t, "High", UVIndexLevel(6.5))
	require.Equal(t, "Very High", UVIndexLevel(10))
	require.Equal(t, "Extreme", UVIndexLevel(11))
}

func TestAQILabels(t *testing.T) {
	require.Equal(t, "Good", AQILabel(1))
	require.Equal(t, "Very Poor", AQILabel(5))
	require.Equal(t, "Good", AQILabel(0))
	require.Equal(t, "Good", AQILabel(9))
	require.Contains(t, AQIRecommendation(5), "Avoid outdoor")
}
