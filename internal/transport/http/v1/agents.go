package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListAgents lists the agent catalog.
// GET /api/v1/agents
func (h *Handler) ListAgents(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"agents": h.registry.All(),
	})
}

// GetAgent gets a catalog agent by ID.
// GET /api/v1/agents/:agent_id
func (h *Handler) GetAgent(c echo.Context) error {
	agent, ok := h.registry.ByID(c.Param("agent_id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "agent not found"})
	}
	return c.JSON(http.StatusOK, agent)
}
