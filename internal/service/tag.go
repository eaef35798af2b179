package service

import (
	"context"

	"github.com/deppfellow/newsroom/internal/dto"
	"github.com/deppfellow/newsroom/internal/errs"
	"github.com/deppfellow/newsroom/internal/model"
	"github.com/deppfellow/newsroom/internal/repository"
)

// TagService implements the tags use cases on top of a repository and
// reports every failure as an *errs.HTTPError.
type TagService struct {
	repo repository.Repository[model.Tag, int64]
}

// NewTagService returns a service backed by repo.
func NewTagService(repo repository.Repository[model.Tag, int64]) *TagService {
	return &TagService{repo: repo}
}

// ReadAll returns every tag ordered by id.
func (s *TagService) ReadAll(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, translate(ctx, err, 0, errs.NewTagNotFoundError)
	}
	return dto.ToTagResponses(tags), nil
}

// ReadByID fails with the tag not-found error when id has no row.
func (s *TagService) ReadByID(ctx context.Context, id int64) (*dto.TagResponse, error) {
	tag, err := s.repo.ReadByID(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, id, errs.NewTagNotFoundError)
	}
	if tag == nil {
		return nil, errs.NewTagNotFoundError(id)
	}

	resp := dto.ToTagResponse(*tag)
	return &resp, nil
}

// Create stores a new tag. A taken name is a save error.
func (s *TagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	tag, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, translate(ctx, err, 0, errs.NewTagNotFoundError)
	}

	resp := dto.ToTagResponse(*tag)
	return &resp, nil
}

// Update renames an existing tag.
func (s *TagService) Update(ctx context.Context, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	tag, err := s.repo.Update(ctx, req.ToModel())
	if err != nil {
		return nil, translate(ctx, err, req.ID, errs.NewTagNotFoundError)
	}

	resp := dto.ToTagResponse(*tag)
	return &resp, nil
}

// DeleteByID confirms the tag exists before removing it.
func (s *TagService) DeleteByID(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if _, err := s.repo.IsExistedByID(ctx, id); err != nil {
		return nil, translate(ctx, err, id, errs.NewTagNotFoundError)
	}

	if _, err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, translate(ctx, err, id, errs.NewTagNotFoundError)
	}

	return &dto.MessageResponse{Message: dto.MessageDeleted}, nil
}
