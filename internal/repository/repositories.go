package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/newsroom/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Authors *AuthorRepository
	Tags    *TagRepository
	News    *NewsRepository
}

// NewRepositories constructs every repository on the server's pool.
//
// Tables are created in dependency order (authors and tags before news)
// so construction also works against an empty database.
func NewRepositories(ctx context.Context, s *server.Server) (*Repositories, error) {
	return newRepositories(ctx, s.DB.Pool)
}

func newRepositories(ctx context.Context, db DB) (*Repositories, error) {
	authors, err := NewAuthorRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("author repository: %w", err)
	}

	tags, err := NewTagRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("tag repository: %w", err)
	}

	news, err := NewNewsRepository(ctx, db, authors, tags)
	if err != nil {
		return nil, fmt.Errorf("news repository: %w", err)
	}

	return &Repositories{
		Authors: authors,
		Tags:    tags,
		News:    news,
	}, nil
}
