package recommender

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// InteractionType describes how a learner engaged with a course item.
type InteractionType string

const (
	// InteractionView means the learner opened the item.
	InteractionView InteractionType = "view"
	// InteractionComplete means the learner finished the item.
	InteractionComplete InteractionType = "complete"
)

// Weight is the popularity weight of the interaction.
func (t InteractionType) Weight() float64 {
	if t == InteractionComplete {
		return 2
	}
	return 1
}

// Level is the difficulty of a course item.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// InteractionRecord is one row of the interaction table.
type InteractionRecord struct {
	UserID          int64           `json:"userId"`
	ItemID          int64           `json:"itemId"`
	InteractionType InteractionType `json:"interactionType"`
	Subject         string          `json:"subject"`
	Level           Level           `json:"level"`
	// Content is filled in by TrainModel.
	Content string `json:"content,omitempty"`
}

// ContentString joins subject and level the way the vectorizer consumes them.
func (r InteractionRecord) ContentString() string {
	return r.Subject + " " + string(r.Level)
}

// Model is the output of one training run. It is never mutated after creation.
type Model struct {
	ID         uuid.UUID
	Version    int
	TrainedAt  time.Time
	Vocabulary []string
	Matrix     *SimilarityMatrix
	Records    []InteractionRecord
}

// Info summarises the model without the matrix.
func (m Model) Info() ModelInfo {
	dim := 0
	if m.Matrix != nil {
		dim = m.Matrix.Dim()
	}
	return ModelInfo{
		ID:             m.ID,
		Version:        m.Version,
		TrainedAt:      m.TrainedAt,
		VocabularySize: len(m.Vocabulary),
		Records:        dim,
	}
}

// ModelInfo is the metadata reported after training.
type ModelInfo struct {
	ID             uuid.UUID `json:"id"`
	Version        int       `json:"version"`
	TrainedAt      time.Time `json:"trainedAt"`
	VocabularySize int       `json:"vocabularySize"`
	Records        int       `json:"records"`
}

// Source tells where a recommendation came from.
type Source string

const (
	SourceModel   Source = "model"
	SourceCache   Source = "cache"
	SourcePopular Source = "popular"
)

// Recommendation is the result of Recommend for one user.
type Recommendation struct {
	UserID int64 `json:"userId"`
	// Items holds distinct item ids in rank order.
	Items []int64 `json:"items"`
	// Records holds every table row whose item is recommended, in table order.
	Records []InteractionRecord `json:"records"`
	Scores  map[int64]float64   `json:"scores"`
	Source  Source              `json:"source"`
}

// Clone returns a copy that shares no slices or maps with r.
func (r Recommendation) Clone() Recommendation {
	r.Items = slices.Clone(r.Items)
	r.Records = slices.Clone(r.Records)
	r.Scores = maps.Clone(r.Scores)
	return r
}

// Request is the Service input.
type Request struct {
	UserID int64 `json:"userId"`
}

// Response is the Service output.
type Response struct {
	Recommendation
	ModelID    uuid.UUID `json:"modelId"`
	DurationMs int64     `json:"durationMs"`
}
