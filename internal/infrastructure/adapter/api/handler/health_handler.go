package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// HealthCheck probes one dependency; Details, when set, adds diagnostics to the response
type HealthCheck struct {
	Name    string
	Check   func(ctx context.Context) error
	Details func() any
}

// HealthHandler reports liveness together with the state of each dependency
type HealthHandler struct {
	checks  []HealthCheck
	timeout time.Duration
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(logger coreport.Logger, timeout time.Duration, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: timeout, logger: logger}
}

// Health handles GET /healthz; any failing check turns the response into 503
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	response := dto.HealthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK

	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			h.logger.Warn("Health check failed", map[string]any{
				"check": check.Name,
				"error": err.Error(),
			})
			response.Checks[check.Name] = "unavailable"
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Checks[check.Name] = "ok"

		if check.Details != nil {
			if response.Details == nil {
				response.Details = make(map[string]any)
			}
			response.Details[check.Name] = check.Details()
		}
	}

	c.JSON(status, response)
}
