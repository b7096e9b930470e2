package profile

import (
	"strings"

	apperrors "github.com/yanqian/weather-planner/pkg/errors"
)

type enumField struct {
	name    string
	value   *string
	allowed []string
}

func validateUpdate(u PreferencesUpdate) error {
	fields := []enumField{
		{"temperatureUnit", u.TemperatureUnit, []string{TemperatureCelsius, TemperatureFahrenheit}},
		{"windSpeedUnit", u.WindSpeedUnit, []string{WindMetersPerSecond, WindKilometersPerHour, WindMilesPerHour}},
		{"timeFormat", u.TimeFormat, []string{TimeFormat12h, TimeFormat24h}},
		{"theme", u.Theme, []string{ThemeLight, ThemeDark, ThemeSystem}},
	}
	for _, f := range fields {
		if f.value == nil || contains(f.allowed, *f.value) {
			continue
		}
		return apperrors.Wrap(apperrors.CodeInvalidInput,
			f.name+" must be one of "+strings.Join(f.allowed, ", "), nil)
	}
	return nil
}

func applyUpdate(p *Preferences, u PreferencesUpdate) {
	if u.TemperatureUnit != nil {
		p.TemperatureUnit = *u.TemperatureUnit
	}
	if u.WindSpeedUnit != nil {
		p.WindSpeedUnit = *u.WindSpeedUnit
	}
	if u.TimeFormat != nil {
		p.TimeFormat = *u.TimeFormat
	}
	if u.Theme != nil {
		p.Theme = *u.Theme
	}
	if u.NotificationsEnabled != nil {
		p.NotificationsEnabled = *u.NotificationsEnabled
	}
	if u.WeatherAlertsEnabled != nil {
		p.WeatherAlertsEnabled = *u.WeatherAlertsEnabled
	}
}

func validateLocation(loc NewLocation) error {
	if strings.TrimSpace(loc.Name) == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "location name cannot be empty", nil)
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "latitude must be between -90 and 90", nil)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "longitude must be between -180 and 180", nil)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
