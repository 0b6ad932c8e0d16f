package journal

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps entries in process memory. Used for local mode and tests.
type MemoryStore struct {
	mu	sync.RWMutex
	byUser	map[string][]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byUser: make(map[string][]Entry),
	}
}

func (s *MemoryStore) InsertEntry(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Activities == nil {
		entry.Activities = Activities{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byUser[entry.UserID] = append(s.byUser[entry.UserID], entry.Clone())
	return nil
}

// FetchRecentEntries mirrors Repository.FetchRecentEntries: newest first, limit <= 0 means all.
// Returned entries are copies.
func (s *MemoryStore) FetchRecentEntries(ctx context.Context, userID string, since time.Time, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.byUser[userID]))
	for _, e := range s.byUser[userID] {
		if e.CreatedAt.Before(since) {
			continue
		}
		out = append(out, e.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
