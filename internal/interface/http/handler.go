package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/course-recommender/internal/domain/recommender"
	apperrors "github.com/yanqian/course-recommender/pkg/errors"
)

// OpsHandler serves health information about the active model.
type OpsHandler struct {
	svc    recommender.Service
	logger *slog.Logger
}

// NewOpsHandler constructs the ops HTTP handler.
func NewOpsHandler(svc recommender.Service, logger *slog.Logger) *OpsHandler {
	return &OpsHandler{
		svc:    svc,
		logger: logger.With("component", "http.ops"),
	}
}

// Health always answers 200 while the process is up.
func (h *OpsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports the active model, or 503 before the first training run.
func (h *OpsHandler) Ready(c *gin.Context) {
	info, ok := h.svc.Model()
	if !ok {
		abortWithError(c, fromAppError(apperrors.Wrap(apperrors.CodeNotTrained, "model is not trained yet", nil)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "model": info})
}
