// Package v1 provides the public HTTP API for runs and agents.
package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techtide/orchestrator/internal/catalog"
	"github.com/techtide/orchestrator/internal/domain"
	"github.com/techtide/orchestrator/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service         *service.Service
	registry        *catalog.Registry
	defaultTenantID string
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service, registry *catalog.Registry, defaultTenantID string) *Handler {
	if defaultTenantID == "" {
		defaultTenantID = "default"
	}
	return &Handler{
		service:         svc,
		registry:        registry,
		defaultTenantID: defaultTenantID,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Run API
	e.POST("/api/v1/runs", h.ExecuteRun)
	e.GET("/api/v1/runs", h.ListRuns)
	e.GET("/api/v1/runs/:run_id", h.GetRun)
	e.GET("/api/v1/runs/:run_id/events", h.GetRunEvents)
	e.POST("/api/v1/runs/:run_id/cancel", h.CancelRun)

	// Agent catalog API
	e.GET("/api/v1/agents", h.ListAgents)
	e.GET("/api/v1/agents/:agent_id", h.GetAgent)
}

// tenantID resolves the tenant for a request: explicit value first, then the
// X-Tenant-ID header, then the configured default.
func (h *Handler) tenantID(c echo.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if header := c.Request().Header.Get("X-Tenant-ID"); header != "" {
		return header
	}
	return h.defaultTenantID
}

// writeError maps domain errors to HTTP status codes.
func writeError(c echo.Context, err error) error {
	var agentNotFound *domain.AgentNotFoundError
	var runNotFound *domain.RunNotFoundError
	var invalid *domain.InvalidTransitionError
	var blocked *domain.ExecutionBlockedError

	switch {
	case errors.As(err, &agentNotFound), errors.As(err, &runNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &invalid):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.As(err, &blocked):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrPersistenceUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "storage unavailable"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
