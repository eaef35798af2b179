package handler

import (
	"github.com/deppfellow/newsroom/internal/server"
	"github.com/deppfellow/newsroom/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Author  *AuthorHandler
	Tag     *TagHandler
	News    *NewsHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Author:  NewAuthorHandler(s, services.Authors),
		Tag:     NewTagHandler(s, services.Tags),
		News:    NewNewsHandler(s, services.News),
	}
}
