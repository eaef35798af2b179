package router

import (
	"net/http"

	"github.com/deppfellow/newsroom/internal/handler"
	"github.com/labstack/echo/v4"
)

// Authors and tags are updated with the id in the body; news with the
// id in the path.

func registerAuthorRoutes(r *echo.Echo, h *handler.AuthorHandler) {
	g := r.Group("/authors")
	g.GET("", handler.Handle(h.Handler, h.ReadAll, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Handler, h.ReadByID, http.StatusOK))
	g.POST("", handler.Handle(h.Handler, h.Create, http.StatusCreated))
	g.PUT("", handler.Handle(h.Handler, h.Update, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Handler, h.DeleteByID, http.StatusOK))
}

func registerTagRoutes(r *echo.Echo, h *handler.TagHandler) {
	g := r.Group("/tags")
	g.GET("", handler.Handle(h.Handler, h.ReadAll, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Handler, h.ReadByID, http.StatusOK))
	g.POST("", handler.Handle(h.Handler, h.Create, http.StatusCreated))
	g.PUT("", handler.Handle(h.Handler, h.Update, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Handler, h.DeleteByID, http.StatusOK))
}

func registerNewsRoutes(r *echo.Echo, h *handler.NewsHandler) {
	g := r.Group("/news")
	g.GET("", handler.Handle(h.Handler, h.ReadAll, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Handler, h.ReadByID, http.StatusOK))
	g.POST("", handler.Handle(h.Handler, h.Create, http.StatusCreated))
	g.PUT("/:id", handler.Handle(h.Handler, h.Update, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Handler, h.DeleteByID, http.StatusOK))
}
