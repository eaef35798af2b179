package service

import (
	"context"

	"github.com/deppfellow/newsroom/internal/dto"
	"github.com/deppfellow/newsroom/internal/errs"
	"github.com/deppfellow/newsroom/internal/model"
	"github.com/deppfellow/newsroom/internal/repository"
)

// NewsService implements the news use cases on top of a repository and
// reports every failure as an *errs.HTTPError.
type NewsService struct {
	repo repository.Repository[model.News, int64]
}

// NewNewsService returns a service backed by repo.
func NewNewsService(repo repository.Repository[model.News, int64]) *NewsService {
	return &NewsService{repo: repo}
}

// ReadAll returns every news item ordered by id.
func (s *NewsService) ReadAll(ctx context.Context) ([]dto.NewsResponse, error) {
	news, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, translate(ctx, err, 0, errs.NewNewsNotFoundError)
	}
	return dto.ToNewsResponses(news), nil
}

// ReadByID fails with the news not-found error when id has no row.
func (s *NewsService) ReadByID(ctx context.Context, id int64) (*dto.NewsResponse, error) {
	news, err := s.repo.ReadByID(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, id, errs.NewNewsNotFoundError)
	}
	if news == nil {
		return nil, errs.NewNewsNotFoundError(id)
	}

	resp := dto.ToNewsResponse(*news)
	return &resp, nil
}

// Create stores the news item, creating its author and any unseen tags by name.
func (s *NewsService) Create(ctx context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	news, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, translate(ctx, err, 0, errs.NewNewsNotFoundError)
	}

	resp := dto.ToNewsResponse(*news)
	return &resp, nil
}

// Update replaces title, content and author. Tags keep their current links.
func (s *NewsService) Update(ctx context.Context, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	news, err := s.repo.Update(ctx, req.ToModel())
	if err != nil {
		return nil, translate(ctx, err, req.ID(), errs.NewNewsNotFoundError)
	}

	resp := dto.ToNewsResponse(*news)
	return &resp, nil
}

// DeleteByID confirms the news item exists before removing it. Its tag
// links go with it.
func (s *NewsService) DeleteByID(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if _, err := s.repo.IsExistedByID(ctx, id); err != nil {
		return nil, translate(ctx, err, id, errs.NewNewsNotFoundError)
	}

	if _, err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, translate(ctx, err, id, errs.NewNewsNotFoundError)
	}

	return &dto.MessageResponse{Message: dto.MessageDeleted}, nil
}
