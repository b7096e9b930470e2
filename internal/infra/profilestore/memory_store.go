package profilestore

import (
	"context"
	"sync"

	"github.com/yanqian/weather-planner/internal/domain/profile"
)

// MemoryStore is an in-memory profile.Store for tests/dev.
type MemoryStore struct {
	mu        sync.RWMutex
	prefs     map[string]profile.Preferences
	locations map[string][]profile.SavedLocation
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prefs:     make(map[string]profile.Preferences),
		locations: make(map[string][]profile.SavedLocation),
	}
}

// GetPreferences implements profile.Store.
func (s *MemoryStore) GetPreferences(_ context.Context, clientID string) (profile.Preferences, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefs, ok := s.prefs[clientID]
	if !ok {
		return profile.Preferences{}, false, nil
	}
	prefs.FavoriteActivities = append([]string(nil), prefs.FavoriteActivities...)
	return prefs, true, nil
}

// SavePreferences implements profile.Store.
func (s *MemoryStore) SavePreferences(_ context.Context, clientID string, prefs profile.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs.FavoriteActivities = append([]string(nil), prefs.FavoriteActivities...)
	s.prefs[clientID] = prefs
	return nil
}

// GetLocations implements profile.Store.
func (s *MemoryStore) GetLocations(_ context.Context, clientID string) ([]profile.SavedLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]profile.SavedLocation(nil), s.locations[clientID]...), nil
}

// SaveLocations implements profile.Store.
func (s *MemoryStore) SaveLocations(_ context.Context, clientID string, locations []profile.SavedLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[clientID] = append([]profile.SavedLocation(nil), locations...)
	return nil
}

// Reset implements profile.Store.
func (s *MemoryStore) Reset(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.prefs, clientID)
	delete(s.locations, clientID)
	return nil
}

var _ profile.Store = (*MemoryStore)(nil)
