package profile

import "context"

// Store persists preferences and saved locations per client.
type Store interface {
	GetPreferences(ctx context.Context, clientID string) (Preferences, bool, error)
	SavePreferences(ctx context.Context, clientID string, prefs Preferences) error
	GetLocations(ctx context.Context, clientID string) ([]SavedLocation, error)
	SaveLocations(ctx context.Context, clientID string, locations []SavedLocation) error
	Reset(ctx context.Context, clientID string) error
}

// HistoryRepository persists activity history entries.
type HistoryRepository interface {
	Insert(ctx context.Context, entry HistoryEntry) error
	List(ctx context.Context, clientID string, query HistoryQuery) ([]HistoryEntry, error)
}
