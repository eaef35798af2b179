package repository

import (
	"context"

	"github.com/deppfellow/newsroom/internal/model"
)

var tagSQL = namedSQL{
	createTable: `CREATE TABLE IF NOT EXISTS tags (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		CONSTRAINT tags_name_key UNIQUE (name)
	)`,
	readAll:     `SELECT id, name FROM tags ORDER BY id`,
	readByID:    `SELECT id, name FROM tags WHERE id = $1`,
	readByName:  `SELECT id, name FROM tags WHERE name = $1`,
	countByName: `SELECT count(*) FROM tags WHERE name = $1`,
	create: `INSERT INTO tags (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name`,
	findOrCreate: `INSERT INTO tags (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
	update:     `UPDATE tags SET name = $2 WHERE id = $1 RETURNING id, name`,
	deleteByID: `DELETE FROM tags WHERE id = $1`,
	existsByID: `SELECT EXISTS (SELECT 1 FROM tags WHERE id = $1)`,
}

// TagRepository owns the tags table.
type TagRepository struct {
	*namedTable[model.Tag]
}

var _ NamedRepository[model.Tag, int64] = (*TagRepository)(nil)

// NewTagRepository returns a repository backed by db, creating the
// tags table if it does not exist yet.
func NewTagRepository(ctx context.Context, db DB) (*TagRepository, error) {
	r := &TagRepository{
		namedTable: &namedTable[model.Tag]{
			db:     db,
			entity: "tag",
			label:  "Tag",
			sql:    tagSQL,
			fields: func(t model.Tag) (int64, string) { return t.ID, t.Name },
		},
	}

	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
