package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/course-recommender/internal/domain/recommender"
	"github.com/yanqian/course-recommender/internal/infra/config"
	"github.com/yanqian/course-recommender/internal/infra/interactionrepo"
	"github.com/yanqian/course-recommender/internal/infra/recstore"
)

func provideRecommenderConfig(cfg *config.Config) recommender.Config {
	return recommender.Config{
		Vectorizer: recommender.VectorizerConfig{
			StopWords:      recommender.StopWordPreset(cfg.Recommender.StopWords),
			ExtraStopWords: cfg.Recommender.ExtraStopWords,
		},
		Recommend: recommender.RecommendConfig{
			TopN:          cfg.Recommender.TopN,
			EmptyHistory:  recommender.EmptyHistoryPolicy(cfg.Recommender.EmptyHistory),
			CandidateMode: recommender.CandidateMode(cfg.Recommender.CandidateMode),
		},
		CacheTTL: cfg.Cache.TTL,
	}
}

func provideInteractionRepository() recommender.InteractionRepository {
	return interactionrepo.NewSeededRepository()
}

func provideRecommendationStore(cfg *config.Config, logger *slog.Logger) recommender.Store {
	if cfg.Cache.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return recstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return recstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("recommendation valkey store enabled", "addr", cfg.Cache.Valkey.Addr)
			return recstore.NewValkeyStore(client, cfg.Cache.Valkey.Prefix, provideBreakerConfig(cfg), logger)
		}
	}
	return recstore.NewMemoryStore()
}

func provideBreakerConfig(cfg *config.Config) recstore.BreakerConfig {
	b := recstore.DefaultBreakerConfig()
	b.MaxRequests = cfg.Cache.Breaker.MaxRequests
	b.Interval = cfg.Cache.Breaker.Interval
	b.Timeout = cfg.Cache.Breaker.Timeout
	b.FailureThreshold = cfg.Cache.Breaker.FailureThreshold
	return b
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
