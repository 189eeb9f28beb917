package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether a backing dependency is reachable
type HealthCheck func(ctx context.Context) error

// HealthHandler serves the liveness endpoint
type HealthHandler interface {
	Healthz(ctx *gin.Context)
}

type healthHandler struct {
	check HealthCheck
}

// NewHealthHandler creates a new HealthHandler. A nil check always reports ok.
func NewHealthHandler(check HealthCheck) HealthHandler {
	return &healthHandler{check: check}
}

// Healthz handles the GET request of the liveness probe
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /healthz [get]
func (handler *healthHandler) Healthz(ctx *gin.Context) {
	if handler.check != nil {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := handler.check(checkCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
