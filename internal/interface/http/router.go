package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/course-recommender/internal/infra/config"
)

// NewRouter wires the ops endpoints. It returns nil when metrics.address is unset.
func NewRouter(cfg *config.Config, handler *OpsHandler) *http.Server {
	if cfg.Metrics.Address == "" {
		return nil
	}
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/readyz", handler.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &http.Server{
		Addr:           cfg.Metrics.Address,
		Handler:        router,
		ReadTimeout:    cfg.Metrics.ReadTimeout,
		WriteTimeout:   cfg.Metrics.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
