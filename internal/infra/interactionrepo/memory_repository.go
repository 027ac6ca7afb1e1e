package interactionrepo

import (
	"context"
	"sync"

	"github.com/yanqian/course-recommender/internal/domain/recommender"
)

// MemoryRepository is an in-memory InteractionRepository.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []recommender.InteractionRecord
}

// NewMemoryRepository constructs a repo holding a copy of records.
func NewMemoryRepository(records []recommender.InteractionRecord) *MemoryRepository {
	return &MemoryRepository{records: append([]recommender.InteractionRecord(nil), records...)}
}

// NewSeededRepository returns a repo preloaded with the built-in dataset.
func NewSeededRepository() *MemoryRepository {
	return NewMemoryRepository(recommender.CreateDummyData())
}

// ListInteractions implements recommender.InteractionRepository.
func (r *MemoryRepository) ListInteractions(ctx context.Context) ([]recommender.InteractionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]recommender.InteractionRecord(nil), r.records...), nil
}

var _ recommender.InteractionRepository = (*MemoryRepository)(nil)
