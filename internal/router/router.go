// Package router builds the Echo instance.
//
// It installs the global middleware chain and error handler and maps
// every route group onto its handler.
package router

import (
	"github.com/deppfellow/newsroom/internal/handler"
	"github.com/deppfellow/newsroom/internal/middleware"
	"github.com/deppfellow/newsroom/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the configured Echo instance.
//
// Middleware order matters: the request id must exist before tracing
// and the context logger read it, and the context logger must exist
// before the request logger and the rate limiter write through it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerAuthorRoutes(router, h.Author)
	registerTagRoutes(router, h.Tag)
	registerNewsRoutes(router, h.News)

	return router
}
