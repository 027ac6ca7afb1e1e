package recommender

import (
	"context"
	"log/slog"
	"sync"
	"time"

	apperrors "github.com/yanqian/course-recommender/pkg/errors"
	"github.com/yanqian/course-recommender/pkg/metrics"
	"github.com/yanqian/course-recommender/pkg/util"
)

// Service exposes training and recommendation over the interaction table.
type Service interface {
	Train(ctx context.Context) (ModelInfo, error)
	Recommend(ctx context.Context, req Request) (Response, error)
	Model() (ModelInfo, bool)
}

type service struct {
	cfg    Config
	repo   InteractionRepository
	store  Store
	logger *slog.Logger
	clock  util.Clock

	mu      sync.RWMutex
	current *Model
	version int
}

// NewService wires up the recommender domain.
func NewService(cfg Config, repo InteractionRepository, store Store, logger *slog.Logger) Service {
	return newService(cfg, repo, store, logger, util.NowUTC)
}

func newService(cfg Config, repo InteractionRepository, store Store, logger *slog.Logger, clock util.Clock) *service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		store:  store,
		logger: logger.With("component", "recommender.service"),
		clock:  util.ClockOrDefault(clock),
	}
}

func (s *service) Train(ctx context.Context) (ModelInfo, error) {
	start := time.Now()
	info, err := s.train(ctx)
	metrics.RecordTraining(err == nil, time.Since(start), info.VocabularySize)
	if err != nil {
		s.logger.Error("training failed", "error", err)
		return ModelInfo{}, err
	}
	s.logger.Info("model trained",
		"model_id", info.ID,
		"version", info.Version,
		"records", info.Records,
		"vocabulary", info.VocabularySize,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return info, nil
}

func (s *service) train(ctx context.Context) (ModelInfo, error) {
	records, err := s.repo.ListInteractions(ctx)
	if err != nil {
		return ModelInfo{}, apperrors.Wrap(apperrors.CodeRepository, "failed to load interactions", err)
	}
	if err := ctx.Err(); err != nil {
		return ModelInfo{}, err
	}
	model, err := trainModel(records, s.cfg.Vectorizer, s.clock)
	if err != nil {
		return ModelInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return ModelInfo{}, err
	}

	s.mu.Lock()
	s.version++
	model.Version = s.version
	s.current = &model
	s.mu.Unlock()

	return model.Info(), nil
}

func (s *service) Recommend(ctx context.Context, req Request) (Response, error) {
	start := time.Now()
	resp, err := s.recommend(ctx, req)
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, "none")
		return Response{}, err
	}
	resp.DurationMs = time.Since(start).Milliseconds()
	metrics.RecordRecommendation(metrics.OutcomeOK, string(resp.Source))
	return resp, nil
}

func (s *service) recommend(ctx context.Context, req Request) (Response, error) {
	s.mu.RLock()
	model := s.current
	s.mu.RUnlock()
	if model == nil {
		return Response{}, apperrors.Wrap(apperrors.CodeNotTrained, "model is not trained", nil)
	}
	if req.UserID <= 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "user id must be positive", nil)
	}

	if s.store != nil {
		cached, ok, err := s.store.GetRecommendation(ctx, model.ID, req.UserID)
		switch {
		case err != nil:
			metrics.RecordCacheLookup("error")
			s.logger.Warn("recommendation cache lookup failed", "user_id", req.UserID, "error", err)
		case ok:
			metrics.RecordCacheLookup("hit")
			cached.Source = SourceCache
			return Response{Recommendation: cached, ModelID: model.ID}, nil
		default:
			metrics.RecordCacheLookup("miss")
		}
	}

	rec, err := Recommend(*model, req.UserID, s.cfg.Recommend)
	if err != nil {
		return Response{}, err
	}

	if s.store != nil {
		if err := s.store.SaveRecommendation(ctx, model.ID, rec, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("failed to cache recommendation", "user_id", req.UserID, "error", err)
		}
	}
	return Response{Recommendation: rec, ModelID: model.ID}, nil
}

func (s *service) Model() (ModelInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ModelInfo{}, false
	}
	return s.current.Info(), true
}
