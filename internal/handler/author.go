package handler

import (
	"context"

	"github.com/deppfellow/newsroom/internal/dto"
	"github.com/deppfellow/newsroom/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthorService is the business API behind the /authors routes.
type AuthorService interface {
	ReadAll(ctx context.Context) ([]dto.AuthorResponse, error)
	ReadByID(ctx context.Context, id int64) (*dto.AuthorResponse, error)
	Create(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.AuthorResponse, error)
	Update(ctx context.Context, req *dto.UpdateAuthorRequest) (*dto.AuthorResponse, error)
	DeleteByID(ctx context.Context, id int64) (*dto.MessageResponse, error)
}

// AuthorHandler serves the /authors routes.
type AuthorHandler struct {
	Handler
	service AuthorService
}

// NewAuthorHandler returns a handler delegating to service.
func NewAuthorHandler(s *server.Server, service AuthorService) *AuthorHandler {
	return &AuthorHandler{
		Handler: NewHandler(s),
		service: service,
	}
}

func (h *AuthorHandler) ReadAll(c echo.Context, _ *dto.Empty) ([]dto.AuthorResponse, error) {
	return h.service.ReadAll(c.Request().Context())
}

func (h *AuthorHandler) ReadByID(c echo.Context, req *dto.IDParam) (*dto.AuthorResponse, error) {
	return h.service.ReadByID(c.Request().Context(), req.ID())
}

func (h *AuthorHandler) Create(c echo.Context, req *dto.CreateAuthorRequest) (*dto.AuthorResponse, error) {
	return h.service.Create(c.Request().Context(), req)
}

// Update takes the author id from the body.
func (h *AuthorHandler) Update(c echo.Context, req *dto.UpdateAuthorRequest) (*dto.AuthorResponse, error) {
	return h.service.Update(c.Request().Context(), req)
}

func (h *AuthorHandler) DeleteByID(c echo.Context, req *dto.IDParam) (*dto.MessageResponse, error) {
	return h.service.DeleteByID(c.Request().Context(), req.ID())
}
