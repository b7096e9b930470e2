package util

import (
	"fmt"
	"time"
)

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatHour renders a unix timestamp as "3 PM" in the given UTC offset (seconds).
func FormatHour(unix int64, offsetSeconds int) string {
	loc := time.FixedZone(fmt.Sprintf("UTC%+d", offsetSeconds/3600), offsetSeconds)
	return time.Unix(unix, 0).In(loc).Format("3 PM")
}

// DayKey returns the YYYY-MM-DD calendar day of a unix timestamp in UTC.
func DayKey(unix int64) string {
	return time.Unix(unix, 0).UTC().Format("2006-01-02")
}
