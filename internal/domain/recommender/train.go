package recommender

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/course-recommender/pkg/errors"
	"github.com/yanqian/course-recommender/pkg/util"
)

// TrainModel derives content strings, vectorizes them with TF-IDF and
// computes the row×row cosine similarity matrix. The input is not mutated.
func TrainModel(records []InteractionRecord, cfg VectorizerConfig) (Model, error) {
	return trainModel(records, cfg, util.NowUTC)
}

func trainModel(records []InteractionRecord, cfg VectorizerConfig, clock util.Clock) (Model, error) {
	if len(records) == 0 {
		return Model{}, apperrors.Wrap(apperrors.CodeInvalidInput, "interaction table is empty", nil)
	}

	withContent := make([]InteractionRecord, len(records))
	docs := make([]string, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Subject) == "" || strings.TrimSpace(string(rec.Level)) == "" {
			return Model{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("row %d is missing subject or level", i), nil)
		}
		rec.Content = rec.ContentString()
		withContent[i] = rec
		docs[i] = rec.Content
	}

	space := fitTransform(docs, stopWordSet(cfg))
	if len(space.vocabulary) == 0 {
		return Model{}, apperrors.Wrap(apperrors.CodeEmptyVocabulary, "no terms left after stop word removal", nil)
	}

	return Model{
		ID:         uuid.New(),
		TrainedAt:  util.ClockOrDefault(clock)(),
		Vocabulary: space.vocabulary,
		Matrix:     newSimilarityMatrix(space.rows),
		Records:    withContent,
	}, nil
}
