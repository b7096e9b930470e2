package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatHour(t *testing.T) {
	// 2024-07-01T15:00:00Z
	ts := int64(1719846000)
	require.Equal(t, "3 PM", FormatHour(ts, 0))
	require.Equal(t, "11 AM", FormatHour(ts, -4*3600))
}

func TestDayKey(t *testing.T) {
	require.Equal(t, "2024-07-01", DayKey(1719846000))
	require.Equal(t, "2024-07-02", DayKey(1719846000+9*3600))
}
