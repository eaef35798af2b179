package handler

import (
	"context"

	"github.com/deppfellow/newsroom/internal/dto"
	"github.com/deppfellow/newsroom/internal/server"
	"github.com/labstack/echo/v4"
)

// TagService is the business API behind the /tags routes.
type TagService interface {
	ReadAll(ctx context.Context) ([]dto.TagResponse, error)
	ReadByID(ctx context.Context, id int64) (*dto.TagResponse, error)
	Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	Update(ctx context.Context, req *dto.UpdateTagRequest) (*dto.TagResponse, error)
	DeleteByID(ctx context.Context, id int64) (*dto.MessageResponse, error)
}

// TagHandler serves the /tags routes.
type TagHandler struct {
	Handler
	service TagService
}

// NewTagHandler returns a handler delegating to service.
func NewTagHandler(s *server.Server, service TagService) *TagHandler {
	return &TagHandler{
		Handler: NewHandler(s),
		service: service,
	}
}

func (h *TagHandler) ReadAll(c echo.Context, _ *dto.Empty) ([]dto.TagResponse, error) {
	return h.service.ReadAll(c.Request().Context())
}

func (h *TagHandler) ReadByID(c echo.Context, req *dto.IDParam) (*dto.TagResponse, error) {
	return h.service.ReadByID(c.Request().Context(), req.ID())
}

func (h *TagHandler) Create(c echo.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	return h.service.Create(c.Request().Context(), req)
}

// Update takes the tag id from the body.
func (h *TagHandler) Update(c echo.Context, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	return h.service.Update(c.Request().Context(), req)
}

func (h *TagHandler) DeleteByID(c echo.Context, req *dto.IDParam) (*dto.MessageResponse, error) {
	return h.service.DeleteByID(c.Request().Context(), req.ID())
}
