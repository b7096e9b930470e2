package historyrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/weather-planner/internal/domain/profile"
)

// MemoryRepository is an in-memory HistoryRepository used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []profile.HistoryEntry
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Insert implements profile.HistoryRepository.
func (r *MemoryRepository) Insert(_ context.Context, entry profile.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.Rating != nil {
		rating := *entry.Rating
		entry.Rating = &rating
	}
	r.entries = append(r.entries, entry)
	return nil
}

// List returns the client's entries, newest activity date first.
func (r *MemoryRepository) List(_ context.Context, clientID string, query profile.HistoryQuery) ([]profile.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]profile.HistoryEntry, 0)
	for _, e := range r.entries {
		if e.ClientID != clientID {
			continue
		}
		if query.ActivityID != "" && e.ActivityID != query.ActivityID {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Date.After(out[j].Date)
	})
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

var _ profile.HistoryRepository = (*MemoryRepository)(nil)
