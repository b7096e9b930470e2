package profile

import "time"

// Preference enums.
const (
	TemperatureCelsius    = "celsius"
	TemperatureFahrenheit = "fahrenheit"

	WindMetersPerSecond   = "ms"
	WindKilometersPerHour = "kmh"
	WindMilesPerHour      = "mph"

	TimeFormat12h = "12h"
	TimeFormat24h = "24h"

	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Preferences are the per-client display and notification settings.
type Preferences struct {
	TemperatureUnit      string   `json:"temperatureUnit"`
	WindSpeedUnit        string   `json:"windSpeedUnit"`
	TimeFormat           string   `json:"timeFormat"`
	Theme                string   `json:"theme"`
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	WeatherAlertsEnabled bool     `json:"weatherAlertsEnabled"`
	FavoriteActivities   []string `json:"favoriteActivities"`
}

// DefaultPreferences is what a new client starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		TemperatureUnit:      TemperatureCelsius,
		WindSpeedUnit:        WindMetersPerSecond,
		TimeFormat:           TimeFormat24h,
		Theme:                ThemeSystem,
		NotificationsEnabled: false,
		WeatherAlertsEnabled: true,
		FavoriteActivities:   []string{},
	}
}

// PreferencesUpdate is a partial update; nil fields are left unchanged.
type PreferencesUpdate struct {
	TemperatureUnit      *string `json:"temperatureUnit"`
	WindSpeedUnit        *string `json:"windSpeedUnit"`
	TimeFormat           *string `json:"timeFormat"`
	Theme                *string `json:"theme"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	WeatherAlertsEnabled *bool   `json:"weatherAlertsEnabled"`
}

// SavedLocation is a named place the client plans for.
type SavedLocation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewLocation is the input for AddLocation.
type NewLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	IsDefault bool    `json:"isDefault"`
}

// HistoryEntry records an activity the client did.
type HistoryEntry struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"-"`
	ActivityID       string    `json:"activityId"`
	Date             time.Time `json:"date"`
	WeatherCondition string    `json:"weatherCondition"`
	Temperature      float64   `json:"temperature"`
	Rating           *int      `json:"rating,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewHistoryEntry is the input for RecordActivity. A zero Date means now.
type NewHistoryEntry struct {
	ActivityID       string    `json:"activityId"`
	Date             time.Time `json:"date"`
	WeatherCondition string    `json:"weatherCondition"`
	Temperature      float64   `json:"temperature"`
	Rating           *int      `json:"rating"`
	Notes            string    `json:"notes"`
}

// HistoryQuery filters History. An empty ActivityID lists everything.
type HistoryQuery struct {
	ActivityID string
	Limit      int
}

// Config holds runtime knobs for the profile service.
type Config struct {
	HistoryLimit int
	MaxLocations int
}
