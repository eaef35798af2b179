package router

import (
	"github.com/deppfellow/newsroom/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the health, docs and static endpoints.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json and the assets of the docs page.
	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
