package recommender

import "time"

// StopWordPreset selects the built-in stop word list.
type StopWordPreset string

const (
	StopWordsEnglish StopWordPreset = "english"
	StopWordsNone    StopWordPreset = "none"
)

// EmptyHistoryPolicy decides what happens for a user without interactions.
type EmptyHistoryPolicy string

const (
	// EmptyHistoryFail returns an invalid_user error.
	EmptyHistoryFail EmptyHistoryPolicy = "fail"
	// EmptyHistoryEmpty returns an empty recommendation.
	EmptyHistoryEmpty EmptyHistoryPolicy = "empty"
	// EmptyHistoryPopular falls back to the most interacted items.
	EmptyHistoryPopular EmptyHistoryPolicy = "popular"
)

// CandidateMode decides whether seen items are removed before or after the top-N cut.
type CandidateMode string

const (
	// CandidateExcludeSeen skips seen items while collecting the top-N distinct items.
	CandidateExcludeSeen CandidateMode = "exclude_seen"
	// CandidateTopRows cuts the top-N rows first and removes seen items afterwards.
	CandidateTopRows CandidateMode = "top_rows"
)

const defaultTopN = 5

// VectorizerConfig controls TF-IDF vectorization.
type VectorizerConfig struct {
	StopWords      StopWordPreset
	ExtraStopWords []string
}

// RecommendConfig controls per-user aggregation and filtering.
type RecommendConfig struct {
	TopN          int
	EmptyHistory  EmptyHistoryPolicy
	CandidateMode CandidateMode
}

// Config holds runtime knobs for the recommender service.
type Config struct {
	Vectorizer VectorizerConfig
	Recommend  RecommendConfig
	CacheTTL   time.Duration
}

// DefaultConfig mirrors the original pipeline: English stop words, top 5.
func DefaultConfig() Config {
	return Config{
		Vectorizer: VectorizerConfig{StopWords: StopWordsEnglish},
		Recommend: RecommendConfig{
			TopN:          defaultTopN,
			EmptyHistory:  EmptyHistoryFail,
			CandidateMode: CandidateExcludeSeen,
		},
	}
}

func (c RecommendConfig) withDefaults() RecommendConfig {
	if c.TopN <= 0 {
		c.TopN = defaultTopN
	}
	switch c.EmptyHistory {
	case EmptyHistoryFail, EmptyHistoryEmpty, EmptyHistoryPopular:
	default:
		c.EmptyHistory = EmptyHistoryFail
	}
	switch c.CandidateMode {
	case CandidateExcludeSeen, CandidateTopRows:
	default:
		c.CandidateMode = CandidateExcludeSeen
	}
	return c
}
