package recommender

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InteractionRepository supplies the interaction table used for training.
type InteractionRepository interface {
	ListInteractions(ctx context.Context) ([]InteractionRecord, error)
}

// Store caches recommendation results per model and user.
type Store interface {
	GetRecommendation(ctx context.Context, modelID uuid.UUID, userID int64) (Recommendation, bool, error)
	SaveRecommendation(ctx context.Context, modelID uuid.UUID, rec Recommendation, ttl time.Duration) error
}
