package service

import (
	"github.com/deppfellow/newsroom/internal/repository"
	"github.com/deppfellow/newsroom/internal/server"
)

// Services groups the business services handed to the HTTP layer.
type Services struct {
	Authors *AuthorService
	Tags    *TagService
	News    *NewsService
}

// NewServices builds every service over its repository.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	s.Logger.Debug().Msg("wiring services")

	return &Services{
		Authors: NewAuthorService(repos.Authors),
		Tags:    NewTagService(repos.Tags),
		News:    NewNewsService(repos.News),
	}, nil
}
