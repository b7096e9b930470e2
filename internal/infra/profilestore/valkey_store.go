package profilestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-planner/internal/domain/profile"
)

// ValkeyStore persists profiles as JSON documents in Valkey. Keys of one client
// share the hash tag {clientID} so they map to the same cluster slot.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "wp:profile"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// GetPreferences loads stored preferences; ok is false when none were saved.
func (s *ValkeyStore) GetPreferences(ctx context.Context, clientID string) (profile.Preferences, bool, error) {
	var prefs profile.Preferences
	ok, err := s.getJSON(ctx, s.preferencesKey(clientID), &prefs)
	if err != nil || !ok {
		return profile.Preferences{}, false, err
	}
	return prefs, true, nil
}

// SavePreferences overwrites the client's preferences document.
func (s *ValkeyStore) SavePreferences(ctx context.Context, clientID string, prefs profile.Preferences) error {
	return s.setJSON(ctx, s.preferencesKey(clientID), prefs)
}

// GetLocations returns the saved locations, nil when none exist.
func (s *ValkeyStore) GetLocations(ctx context.Context, clientID string) ([]profile.SavedLocation, error) {
	var locations []profile.SavedLocation
	if _, err := s.getJSON(ctx, s.locationsKey(clientID), &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// SaveLocations overwrites the client's location list.
func (s *ValkeyStore) SaveLocations(ctx context.Context, clientID string, locations []profile.SavedLocation) error {
	return s.setJSON(ctx, s.locationsKey(clientID), locations)
}

// Reset deletes both documents of a client in one DEL.
func (s *ValkeyStore) Reset(ctx context.Context, clientID string) error {
	cmd := s.client.B().Del().Key(s.preferencesKey(clientID), s.locationsKey(clientID)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *ValkeyStore) setJSON(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	cmd := s.client.B().Set().Key(key).Value(valkey.BinaryString(payload)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) preferencesKey(clientID string) string {
	return fmt.Sprintf("%s:{%s}:preferences", s.prefix, clientID)
}

func (s *ValkeyStore) locationsKey(clientID string) string {
	return fmt.Sprintf("%s:{%s}:locations", s.prefix, clientID)
}

var _ profile.Store = (*ValkeyStore)(nil)
