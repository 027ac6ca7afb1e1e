package recommender

import (
	"sort"

	apperrors "github.com/yanqian/course-recommender/pkg/errors"
)

// Recommend aggregates similarity over the rows of the user's seen items
// and returns the best unseen items.
func Recommend(model Model, userID int64, cfg RecommendConfig) (Recommendation, error) {
	if userID <= 0 {
		return Recommendation{}, apperrors.Wrap(apperrors.CodeInvalidInput, "user id must be positive", nil)
	}
	if model.Matrix == nil || model.Matrix.Dim() != len(model.Records) {
		return Recommendation{}, apperrors.Wrap(apperrors.CodeNotTrained, "model is not trained", nil)
	}
	cfg = cfg.withDefaults()

	seen := seenItems(model.Records, userID)
	if len(seen) == 0 {
		switch cfg.EmptyHistory {
		case EmptyHistoryEmpty:
			return Recommendation{UserID: userID, Items: []int64{}, Records: []InteractionRecord{}, Scores: map[int64]float64{}, Source: SourceModel}, nil
		case EmptyHistoryPopular:
			return popular(model.Records, userID, cfg.TopN), nil
		default:
			return Recommendation{}, apperrors.Wrap(apperrors.CodeInvalidUser, "user has no interactions", nil)
		}
	}

	rows := make([]int, 0, len(model.Records))
	for i, rec := range model.Records {
		if _, ok := seen[rec.ItemID]; ok {
			rows = append(rows, i)
		}
	}
	scores := model.Matrix.MeanOfRows(rows)
	ranked := rankRows(scores)

	var items []int64
	switch cfg.CandidateMode {
	case CandidateTopRows:
		if len(ranked) > cfg.TopN {
			ranked = ranked[:cfg.TopN]
		}
		items = distinctItems(model.Records, ranked, seen, len(ranked))
	default:
		items = distinctItems(model.Records, ranked, seen, cfg.TopN)
	}

	wanted := make(map[int64]struct{}, len(items))
	for _, id := range items {
		wanted[id] = struct{}{}
	}
	// an item's score is the score of its best ranked row
	itemScores := make(map[int64]float64, len(items))
	for _, row := range ranked {
		id := model.Records[row].ItemID
		if _, ok := wanted[id]; !ok {
			continue
		}
		if _, ok := itemScores[id]; !ok {
			itemScores[id] = scores[row]
		}
	}

	return Recommendation{
		UserID:  userID,
		Items:   items,
		Records: recordsFor(model.Records, items),
		Scores:  itemScores,
		Source:  SourceModel,
	}, nil
}

func seenItems(records []InteractionRecord, userID int64) map[int64]struct{} {
	seen := make(map[int64]struct{})
	for _, rec := range records {
		if rec.UserID == userID {
			seen[rec.ItemID] = struct{}{}
		}
	}
	return seen
}

// rankRows orders row indices by score descending, lower index first on ties.
func rankRows(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	return idx
}

// distinctItems walks ranked rows and collects up to limit unseen item ids.
func distinctItems(records []InteractionRecord, ranked []int, seen map[int64]struct{}, limit int) []int64 {
	items := make([]int64, 0, limit)
	picked := make(map[int64]struct{}, limit)
	for _, row := range ranked {
		if len(items) >= limit {
			break
		}
		id := records[row].ItemID
		if _, ok := seen[id]; ok {
			continue
		}
		if _, ok := picked[id]; ok {
			continue
		}
		picked[id] = struct{}{}
		items = append(items, id)
	}
	return items
}

func recordsFor(records []InteractionRecord, items []int64) []InteractionRecord {
	want := make(map[int64]struct{}, len(items))
	for _, id := range items {
		want[id] = struct{}{}
	}
	out := make([]InteractionRecord, 0, len(records))
	for _, rec := range records {
		if _, ok := want[rec.ItemID]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// popular ranks items by weighted interaction count for users without history.
func popular(records []InteractionRecord, userID int64, topN int) Recommendation {
	weights := make(map[int64]float64)
	for _, rec := range records {
		weights[rec.ItemID] += rec.InteractionType.Weight()
	}
	items := make([]int64, 0, len(weights))
	for id := range weights {
		items = append(items, id)
	}
	sort.Slice(items, func(i, j int) bool {
		if weights[items[i]] == weights[items[j]] {
			return items[i] < items[j]
		}
		return weights[items[i]] > weights[items[j]]
	})
	if len(items) > topN {
		items = items[:topN]
	}
	scores := make(map[int64]float64, len(items))
	for _, id := range items {
		scores[id] = weights[id]
	}
	return Recommendation{
		UserID:  userID,
		Items:   items,
		Records: recordsFor(records, items),
		Scores:  scores,
		Source:  SourcePopular,
	}
}
