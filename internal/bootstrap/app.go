package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/course-recommender/internal/domain/recommender"
	"github.com/yanqian/course-recommender/internal/infra/config"
)

// App trains the model once, logs recommendations for the configured users
// and, when an ops server is configured, keeps serving it until shutdown.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    recommender.Service
	server *http.Server
}

// NewApp is used by Wire to build the runnable app. server may be nil.
func NewApp(cfg *config.Config, logger *slog.Logger, svc recommender.Service, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), svc: svc, server: server}
}

// Run executes the pipeline and blocks on the ops server if there is one.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.svc.Train(ctx); err != nil {
		return err
	}

	for _, userID := range a.cfg.Runner.UserIDs {
		resp, err := a.svc.Recommend(ctx, recommender.Request{UserID: userID})
		if err != nil {
			a.logger.Warn("recommendation failed", "user_id", userID, "error", err)
			continue
		}
		a.logger.Info("recommendation",
			"user_id", userID,
			"items", resp.Items,
			"records", len(resp.Records),
			"source", resp.Source,
			"model_id", resp.ModelID,
		)
	}

	if a.server == nil {
		return nil
	}
	return a.serve(ctx)
}

func (a *App) serve(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("ops server starting", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
