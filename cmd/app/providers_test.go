package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/course-recommender/internal/domain/recommender"
	"github.com/yanqian/course-recommender/internal/infra/config"
	"github.com/yanqian/course-recommender/internal/infra/recstore"
)

func TestProvideRecommenderConfig(t *testing.T) {
	cfg := &config.Config{Recommender: config.RecommenderConfig{
		StopWords:      "none",
		ExtraStopWords: []string{"java"},
		TopN:           2,
		EmptyHistory:   "popular",
		CandidateMode:  "top_rows",
	}}
	got := provideRecommenderConfig(cfg)
	require.Equal(t, recommender.StopWordsNone, got.Vectorizer.StopWords)
	require.Equal(t, recommender.EmptyHistoryPopular, got.Recommend.EmptyHistory)
	require.Equal(t, recommender.CandidateTopRows, got.Recommend.CandidateMode)
	require.Equal(t, 2, got.Recommend.TopN)
}

func TestProvideStoreFallsBackToMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := provideRecommendationStore(&config.Config{}, logger)
	require.IsType(t, &recstore.MemoryStore{}, store)
}

func TestBuildValkeyOptions(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{Valkey: config.ValkeyConfig{Addr: "localhost:6379"}}}
	opt, err := buildValkeyOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)

	cfg.Cache.Valkey.Addr = "redis://cache.internal:6380/0"
	opt, err = buildValkeyOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"cache.internal:6380"}, opt.InitAddress)
}
