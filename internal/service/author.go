package service

import (
	"context"

	"github.com/deppfellow/newsroom/internal/dto"
	"github.com/deppfellow/newsroom/internal/errs"
	"github.com/deppfellow/newsroom/internal/model"
	"github.com/deppfellow/newsroom/internal/repository"
)

// AuthorService implements the authors use cases on top of a repository and
// reports every failure as an *errs.HTTPError.
type AuthorService struct {
	repo repository.Repository[model.Author, int64]
}

// NewAuthorService returns a service backed by repo.
func NewAuthorService(repo repository.Repository[model.Author, int64]) *AuthorService {
	return &AuthorService{repo: repo}
}

// ReadAll returns every author ordered by id.
func (s *AuthorService) ReadAll(ctx context.Context) ([]dto.AuthorResponse, error) {
	authors, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, translate(ctx, err, 0, errs.NewAuthorNotFoundError)
	}
	return dto.ToAuthorResponses(authors), nil
}

// ReadByID fails with the author not-found error when id has no row.
func (s *AuthorService) ReadByID(ctx context.Context, id int64) (*dto.AuthorResponse, error) {
	author, err := s.repo.ReadByID(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, id, errs.NewAuthorNotFoundError)
	}
	if author == nil {
		return nil, errs.NewAuthorNotFoundError(id)
	}

	resp := dto.ToAuthorResponse(*author)
	return &resp, nil
}

// Create stores a new author. A taken name is a save error.
func (s *AuthorService) Create(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.AuthorResponse, error) {
	author, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, translate(ctx, err, 0, errs.NewAuthorNotFoundError)
	}

	resp := dto.ToAuthorResponse(*author)
	return &resp, nil
}

// Update renames an existing author.
func (s *AuthorService) Update(ctx context.Context, req *dto.UpdateAuthorRequest) (*dto.AuthorResponse, error) {
	author, err := s.repo.Update(ctx, req.ToModel())
	if err != nil {
		return nil, translate(ctx, err, req.ID, errs.NewAuthorNotFoundError)
	}

	resp := dto.ToAuthorResponse(*author)
	return &resp, nil
}

// DeleteByID confirms the author exists before removing it.
func (s *AuthorService) DeleteByID(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if _, err := s.repo.IsExistedByID(ctx, id); err != nil {
		return nil, translate(ctx, err, id, errs.NewAuthorNotFoundError)
	}

	if _, err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, translate(ctx, err, id, errs.NewAuthorNotFoundError)
	}

	return &dto.MessageResponse{Message: dto.MessageDeleted}, nil
}
