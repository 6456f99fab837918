// Package http provides the HTTP server for the orchestrator.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/techtide/orchestrator/internal/catalog"
	"github.com/techtide/orchestrator/internal/service"
	v1 "github.com/techtide/orchestrator/internal/transport/http/v1"
)

// NewServer creates and configures the HTTP server.
func NewServer(svc *service.Service, registry *catalog.Registry, defaultTenantID string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	handler := v1.NewHandler(svc, registry, defaultTenantID)
	handler.RegisterRoutes(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"version": "0.1.0",
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
