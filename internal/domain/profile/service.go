package profile

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/weather-planner/internal/domain/activity"
	"github.com/yanqian/weather-planner/internal/domain/weather"
	apperrors "github.com/yanqian/weather-planner/pkg/errors"
)

const (
	defaultHistoryLimit = 100
	defaultMaxLocations = 20
	maxNotesLength      = 500
)

// Service manages per-client preferences, saved locations and activity history.
type Service interface {
	GetPreferences(ctx context.Context, clientID string) (Preferences, error)
	UpdatePreferences(ctx context.Context, clientID string, update PreferencesUpdate) (Preferences, error)
	ResetPreferences(ctx context.Context, clientID string) (Preferences, error)
	ToggleFavorite(ctx context.Context, clientID, activityID string) (Preferences, error)
	ListLocations(ctx context.Context, clientID string) ([]SavedLocation, error)
	AddLocation(ctx context.Context, clientID string, loc NewLocation) (SavedLocation, error)
	RemoveLocation(ctx context.Context, clientID, locationID string) error
	SetDefaultLocation(ctx context.Context, clientID, locationID string) ([]SavedLocation, error)
	RecordActivity(ctx context.Context, clientID string, entry NewHistoryEntry) (HistoryEntry, error)
	History(ctx context.Context, clientID string, query HistoryQuery) ([]HistoryEntry, error)
}

// ActivityLookup resolves activity ids. *activity.Catalog satisfies it.
type ActivityLookup interface {
	ByID(id string) (activity.Activity, bool)
}

type service struct {
	cfg     Config
	store   Store
	history HistoryRepository
	lookup  ActivityLookup
	logger  *slog.Logger
	now     func() time.Time
	// serializes read-modify-write cycles against the store
	mu sync.Mutex
}

// NewService wires up the profile domain.
func NewService(cfg Config, store Store, history HistoryRepository, lookup ActivityLookup, logger *slog.Logger) Service {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	if cfg.MaxLocations <= 0 {
		cfg.MaxLocations = defaultMaxLocations
	}
	return &service{
		cfg:     cfg,
		store:   store,
		history: history,
		lookup:  lookup,
		logger:  logger.With("component", "profile.service"),
		now:     time.Now,
	}
}

// ValidateClientID checks that id is a UUID.
func ValidateClientID(id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "client id must be a uuid", err)
	}
	return nil
}

func (s *service) GetPreferences(ctx context.Context, clientID string) (Preferences, error) {
	if err := ValidateClientID(clientID); err != nil {
		return Preferences{}, err
	}
	return s.loadPreferences(ctx, clientID)
}

func (s *service) UpdatePreferences(ctx context.Context, clientID string, update PreferencesUpdate) (Preferences, error) {
	if err := ValidateClientID(clientID); err != nil {
		return Preferences{}, err
	}
	if err := validateUpdate(update); err != nil {
		return Preferences{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.loadPreferences(ctx, clientID)
	if err != nil {
		return Preferences{}, err
	}
	applyUpdate(&prefs, update)
	if err := s.savePreferences(ctx, clientID, prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

func (s *service) ResetPreferences(ctx context.Context, clientID string) (Preferences, error) {
	if err := ValidateClientID(clientID); err != nil {
		return Preferences{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Reset(ctx, clientID); err != nil {
		return Preferences{}, apperrors.Wrap(apperrors.CodeStorageError, "failed to reset profile", err)
	}
	s.logger.Info("profile reset", "client_id", clientID)
	return DefaultPreferences(), nil
}

func (s *service) ToggleFavorite(ctx context.Context, clientID, activityID string) (Preferences, error) {
	if err := ValidateClientID(clientID); err != nil {
		return Preferences{}, err
	}
	if _, ok := s.lookup.ByID(activityID); !ok {
		return Preferences{}, apperrors.Wrap(apperrors.CodeNotFound, "activity not found", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.loadPreferences(ctx, clientID)
	if err != nil {
		return Preferences{}, err
	}
	favorites := make([]string, 0, len(prefs.FavoriteActivities)+1)
	removed := false
	for _, id := range prefs.FavoriteActivities {
		if id == activityID {
			removed = true
			continue
		}
		favorites = append(favorites, id)
	}
	if !removed {
		favorites = append(favorites, activityID)
	}
	prefs.FavoriteActivities = favorites
	if err := s.savePreferences(ctx, clientID, prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

func (s *service) ListLocations(ctx context.Context, clientID string) ([]SavedLocation, error) {
	if err := ValidateClientID(clientID); err != nil {
		return nil, err
	}
	return s.loadLocations(ctx, clientID)
}

func (s *service) AddLocation(ctx context.Context, clientID string, loc NewLocation) (SavedLocation, error) {
	if err := ValidateClientID(clientID); err != nil {
		return SavedLocation{}, err
	}
	if err := validateLocation(loc); err != nil {
		return SavedLocation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	locations, err := s.loadLocations(ctx, clientID)
	if err != nil {
		return SavedLocation{}, err
	}
	if len(locations) >= s.cfg.MaxLocations {
		return SavedLocation{}, apperrors.Wrap(apperrors.CodeInvalidInput, "too many saved locations", nil)
	}

	saved := SavedLocation{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(loc.Name),
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		City:      strings.TrimSpace(loc.City),
		Country:   strings.TrimSpace(loc.Country),
		CreatedAt: s.now().UTC(),
	}
	if loc.IsDefault || len(locations) == 0 {
		saved.IsDefault = true
		for i := range locations {
			locations[i].IsDefault = false
		}
		locations = append([]SavedLocation{saved}, locations...)
	} else {
		locations = append(locations, saved)
	}

	if err := s.saveLocations(ctx, clientID, locations); err != nil {
		return SavedLocation{}, err
	}
	return saved, nil
}

func (s *service) RemoveLocation(ctx context.Context, clientID, locationID string) error {
	if err := ValidateClientID(clientID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	locations, err := s.loadLocations(ctx, clientID)
	if err != nil {
		return err
	}
	idx := indexOf(locations, locationID)
	if idx < 0 {
		return apperrors.Wrap(apperrors.CodeNotFound, "location not found", nil)
	}
	wasDefault := locations[idx].IsDefault
	locations = append(locations[:idx], locations[idx+1:]...)
	if wasDefault && len(locations) > 0 {
		oldest := 0
		for i, l := range locations {
			if l.CreatedAt.Before(locations[oldest].CreatedAt) {
				oldest = i
			}
		}
		locations[oldest].IsDefault = true
	}
	return s.saveLocations(ctx, clientID, locations)
}

func (s *service) SetDefaultLocation(ctx context.Context, clientID, locationID string) ([]SavedLocation, error) {
	if err := ValidateClientID(clientID); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	locations, err := s.loadLocations(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if indexOf(locations, locationID) < 0 {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "location not found", nil)
	}
	for i := range locations {
		locations[i].IsDefault = locations[i].ID == locationID
	}
	if err := s.saveLocations(ctx, clientID, locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *service) RecordActivity(ctx context.Context, clientID string, in NewHistoryEntry) (HistoryEntry, error) {
	if err := ValidateClientID(clientID); err != nil {
		return HistoryEntry{}, err
	}
	if _, ok := s.lookup.ByID(in.ActivityID); !ok {
		return HistoryEntry{}, apperrors.Wrap(apperrors.CodeNotFound, "activity not found", nil)
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return HistoryEntry{}, apperrors.Wrap(apperrors.CodeInvalidInput, "rating must be between 1 and 5", nil)
	}
	notes := strings.TrimSpace(in.Notes)
	if len(notes) > maxNotesLength {
		return HistoryEntry{}, apperrors.Wrap(apperrors.CodeInvalidInput, "notes are too long", nil)
	}

	now := s.now().UTC()
	date := in.Date.UTC()
	if in.Date.IsZero() {
		date = now
	}
	entry := HistoryEntry{
		ID:               uuid.NewString(),
		ClientID:         clientID,
		ActivityID:       in.ActivityID,
		Date:             date,
		WeatherCondition: string(weather.Classify(in.WeatherCondition)),
		Temperature:      in.Temperature,
		Rating:           in.Rating,
		Notes:            notes,
		CreatedAt:        now,
	}
	if err := s.history.Insert(ctx, entry); err != nil {
		return HistoryEntry{}, apperrors.Wrap(apperrors.CodeStorageError, "failed to record activity", err)
	}
	s.logger.Info("activity recorded", "client_id", clientID, "activity_id", entry.ActivityID)
	return entry, nil
}

func (s *service) History(ctx context.Context, clientID string, query HistoryQuery) ([]HistoryEntry, error) {
	if err := ValidateClientID(clientID); err != nil {
		return nil, err
	}
	if query.Limit <= 0 || query.Limit > s.cfg.HistoryLimit {
		query.Limit = s.cfg.HistoryLimit
	}
	entries, err := s.history.List(ctx, clientID, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageError, "failed to load history", err)
	}
	return entries, nil
}

func (s *service) loadPreferences(ctx context.Context, clientID string) (Preferences, error) {
	prefs, ok, err := s.store.GetPreferences(ctx, clientID)
	if err != nil {
		return Preferences{}, apperrors.Wrap(apperrors.CodeStorageError, "failed to load preferences", err)
	}
	if !ok {
		return DefaultPreferences(), nil
	}
	return mergeDefaults(prefs), nil
}

func (s *service) savePreferences(ctx context.Context, clientID string, prefs Preferences) error {
	if err := s.store.SavePreferences(ctx, clientID, prefs); err != nil {
		return apperrors.Wrap(apperrors.CodeStorageError, "failed to save preferences", err)
	}
	return nil
}

func (s *service) loadLocations(ctx context.Context, clientID string) ([]SavedLocation, error) {
	locations, err := s.store.GetLocations(ctx, clientID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageError, "failed to load locations", err)
	}
	if locations == nil {
		locations = []SavedLocation{}
	}
	return locations, nil
}

func (s *service) saveLocations(ctx context.Context, clientID string, locations []SavedLocation) error {
	if err := s.store.SaveLocations(ctx, clientID, locations); err != nil {
		return apperrors.Wrap(apperrors.CodeStorageError, "failed to save locations", err)
	}
	return nil
}

// mergeDefaults fills fields missing from older stored documents.
func mergeDefaults(prefs Preferences) Preferences {
	def := DefaultPreferences()
	if prefs.TemperatureUnit == "" {
		prefs.TemperatureUnit = def.TemperatureUnit
	}
	if prefs.WindSpeedUnit == "" {
		prefs.WindSpeedUnit = def.WindSpeedUnit
	}
	if prefs.TimeFormat == "" {
		prefs.TimeFormat = def.TimeFormat
	}
	if prefs.Theme == "" {
		prefs.Theme = def.Theme
	}
	if prefs.FavoriteActivities == nil {
		prefs.FavoriteActivities = []string{}
	}
	return prefs
}

func indexOf(locations []SavedLocation, id string) int {
	for i, l := range locations {
		if l.ID == id {
			return i
		}
	}
	return -1
}
