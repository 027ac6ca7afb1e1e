//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/course-recommender/internal/bootstrap"
	"github.com/yanqian/course-recommender/internal/domain/recommender"
	"github.com/yanqian/course-recommender/internal/infra/config"
	httpiface "github.com/yanqian/course-recommender/internal/interface/http"
	"github.com/yanqian/course-recommender/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideRecommenderConfig,
		provideInteractionRepository,
		provideRecommendationStore,
		recommender.NewService,
		httpiface.NewOpsHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
