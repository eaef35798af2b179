package repository

import (
	"context"

	"github.com/deppfellow/newsroom/internal/model"
)

var authorSQL = namedSQL{
	createTable: `CREATE TABLE IF NOT EXISTS authors (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		CONSTRAINT authors_name_key UNIQUE (name)
	)`,
	readAll:     `SELECT id, name FROM authors ORDER BY id`,
	readByID:    `SELECT id, name FROM authors WHERE id = $1`,
	readByName:  `SELECT id, name FROM authors WHERE name = $1`,
	countByName: `SELECT count(*) FROM authors WHERE name = $1`,
	create: `INSERT INTO authors (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name`,
	findOrCreate: `INSERT INTO authors (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
	update:     `UPDATE authors SET name = $2 WHERE id = $1 RETURNING id, name`,
	deleteByID: `DELETE FROM authors WHERE id = $1`,
	existsByID: `SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`,
}

// AuthorRepository owns the authors table.
type AuthorRepository struct {
	*namedTable[model.Author]
}

var _ NamedRepository[model.Author, int64] = (*AuthorRepository)(nil)

// NewAuthorRepository returns a repository backed by db, creating the
// authors table if it does not exist yet.
func NewAuthorRepository(ctx context.Context, db DB) (*AuthorRepository, error) {
	r := &AuthorRepository{
		namedTable: &namedTable[model.Author]{
			db:     db,
			entity: "author",
			label:  "Author",
			sql:    authorSQL,
			fields: func(a model.Author) (int64, string) { return a.ID, a.Name },
		},
	}

	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
