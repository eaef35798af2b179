package handler

import (
	"context"

	"github.com/deppfellow/newsroom/internal/dto"
	"github.com/deppfellow/newsroom/internal/server"
	"github.com/labstack/echo/v4"
)

// NewsService is the business API behind the /news routes.
type NewsService interface {
	ReadAll(ctx context.Context) ([]dto.NewsResponse, error)
	ReadByID(ctx context.Context, id int64) (*dto.NewsResponse, error)
	Create(ctx context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error)
	Update(ctx context.Context, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error)
	DeleteByID(ctx context.Context, id int64) (*dto.MessageResponse, error)
}

// NewsHandler serves the /news routes.
type NewsHandler struct {
	Handler
	service NewsService
}

// NewNewsHandler returns a handler delegating to service.
func NewNewsHandler(s *server.Server, service NewsService) *NewsHandler {
	return &NewsHandler{
		Handler: NewHandler(s),
		service: service,
	}
}

func (h *NewsHandler) ReadAll(c echo.Context, _ *dto.Empty) ([]dto.NewsResponse, error) {
	return h.service.ReadAll(c.Request().Context())
}

func (h *NewsHandler) ReadByID(c echo.Context, req *dto.IDParam) (*dto.NewsResponse, error) {
	return h.service.ReadByID(c.Request().Context(), req.ID())
}

func (h *NewsHandler) Create(c echo.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	return h.service.Create(c.Request().Context(), req)
}

// Update takes the news id from the path. Tags are not changed.
func (h *NewsHandler) Update(c echo.Context, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	return h.service.Update(c.Request().Context(), req)
}

func (h *NewsHandler) DeleteByID(c echo.Context, req *dto.IDParam) (*dto.MessageResponse, error) {
	return h.service.DeleteByID(c.Request().Context(), req.ID())
}
