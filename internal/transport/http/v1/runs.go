package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ExecuteRunRequest is the request to start an agent run.
type ExecuteRunRequest struct {
	AgentID  string         `json:"agent_id"`
	TenantID string         `json:"tenant_id,omitempty"`
	Input    map[string]any `json:"input,omitempty"`
}

// ExecuteRun accepts a run and starts it in the background.
// POST /api/v1/runs
func (h *Handler) ExecuteRun(c echo.Context) error {
	ctx := c.Request().Context()

	var req ExecuteRunRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.AgentID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "agent_id is required"})
	}

	run, err := h.service.ExecuteAgent(ctx, h.tenantID(c, req.TenantID), req.AgentID, req.Input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, run)
}

// ListRuns lists the most recent runs for a tenant.
// GET /api/v1/runs
func (h *Handler) ListRuns(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		}
		limit = parsed
	}

	runs, err := h.service.ListRuns(ctx, h.tenantID(c, c.QueryParam("tenant_id")), limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"runs": runs})
}

// GetRun gets a run by ID.
// GET /api/v1/runs/:run_id
func (h *Handler) GetRun(c echo.Context) error {
	ctx := c.Request().Context()

	run, err := h.service.GetRun(ctx, c.Param("run_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, run)
}

// GetRunEvents returns a run's audit log in insertion order.
// GET /api/v1/runs/:run_id/events
func (h *Handler) GetRunEvents(c echo.Context) error {
	ctx := c.Request().Context()

	events, err := h.service.ListRunEvents(ctx, c.Param("run_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"events": events})
}

// CancelRun signals and cancels an in-flight run.
// POST /api/v1/runs/:run_id/cancel
func (h *Handler) CancelRun(c echo.Context) error {
	ctx := c.Request().Context()
	runID := c.Param("run_id")

	h.service.RequestCancellation(runID)

	run, err := h.service.CancelRun(ctx, runID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, run)
}
