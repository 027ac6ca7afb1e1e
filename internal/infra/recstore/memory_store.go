package recstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/course-recommender/internal/domain/recommender"
)

type cachedRecommendation struct {
	payload   recommender.Recommendation
	expiresAt time.Time
}

// MemoryStore caches recommendations in process memory. Only the most
// recently saved model is kept; saving under a new model id drops the rest.
type MemoryStore struct {
	mu      sync.RWMutex
	modelID uuid.UUID
	entries map[int64]cachedRecommendation
	now     func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[int64]cachedRecommendation),
		now:     time.Now,
	}
}

// GetRecommendation implements recommender.Store.
func (s *MemoryStore) GetRecommendation(_ context.Context, modelID uuid.UUID, userID int64) (recommender.Recommendation, bool, error) {
	s.mu.RLock()
	entry, ok := s.lookupLocked(modelID, userID)
	s.mu.RUnlock()
	if !ok {
		return recommender.Recommendation{}, false, nil
	}
	if s.hasExpired(entry.expiresAt) {
		s.mu.Lock()
		// a concurrent save may have replaced the entry
		if current, ok := s.lookupLocked(modelID, userID); ok && s.hasExpired(current.expiresAt) {
			delete(s.entries, userID)
		}
		s.mu.Unlock()
		return recommender.Recommendation{}, false, nil
	}
	return entry.payload.Clone(), true, nil
}

// SaveRecommendation caches the result with optional TTL.
func (s *MemoryStore) SaveRecommendation(_ context.Context, modelID uuid.UUID, rec recommender.Recommendation, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if modelID != s.modelID {
		s.modelID = modelID
		s.entries = make(map[int64]cachedRecommendation)
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.entries[rec.UserID] = cachedRecommendation{
		payload:   rec.Clone(),
		expiresAt: exp,
	}
	return nil
}

// Len reports the number of cached entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) lookupLocked(modelID uuid.UUID, userID int64) (cachedRecommendation, bool) {
	if modelID != s.modelID {
		return cachedRecommendation{}, false
	}
	entry, ok := s.entries[userID]
	return entry, ok
}

func (s *MemoryStore) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ recommender.Store = (*MemoryStore)(nil)
