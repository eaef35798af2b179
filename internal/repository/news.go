package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/newsroom/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	newsCreateTable = `CREATE TABLE IF NOT EXISTS news (
		id        BIGSERIAL PRIMARY KEY,
		title     VARCHAR(100) NOT NULL,
		content   VARCHAR(100) NOT NULL,
		author_id BIGINT REFERENCES authors (id) ON DELETE SET NULL
	)`

	newsTagsCreateTable = `CREATE TABLE IF NOT EXISTS news_tags (
		news_id  BIGINT NOT NULL REFERENCES news (id) ON DELETE CASCADE,
		tag_id   BIGINT NOT NULL REFERENCES tags (id) ON DELETE CASCADE,
		position INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (news_id, tag_id)
	)`

	// newsSelect yields one row per (news, tag) pair, or a single row with
	// NULL tag columns for news without tags. Author columns are NULL once
	// the author has been deleted.
	newsSelect = `SELECT n.id, n.title, n.content,
		a.id AS author_id, a.name AS author_name,
		t.id AS tag_id, t.name AS tag_name
	FROM news n
	LEFT JOIN authors a ON a.id = n.author_id
	LEFT JOIN news_tags nt ON nt.news_id = n.id
	LEFT JOIN tags t ON t.id = nt.tag_id`

	newsReadAll  = newsSelect + ` ORDER BY n.id, nt.position`
	newsReadByID = newsSelect + ` WHERE n.id = $1 ORDER BY nt.position`

	newsInsert = `INSERT INTO news (title, content, author_id) VALUES ($1, $2, $3) RETURNING id`

	// newsTagsInsert links every tag id in $2 to news $1 in one round trip,
	// recording each tag's position in the input array.
	newsTagsInsert = `INSERT INTO news_tags (news_id, tag_id, position)
		SELECT $1, t.tag_id, t.position
		FROM unnest($2::bigint[]) WITH ORDINALITY AS t(tag_id, position)
		ON CONFLICT (news_id, tag_id) DO NOTHING`

	newsUpdate     = `UPDATE news SET title = $2, content = $3, author_id = $4 WHERE id = $1`
	newsDeleteByID = `DELETE FROM news WHERE id = $1`
	newsExistsByID = `SELECT EXISTS (SELECT 1 FROM news WHERE id = $1)`
)

// newsRow is one row of newsSelect.
type newsRow struct {
	ID         int64       `db:"id"`
	Title      string      `db:"title"`
	Content    string      `db:"content"`
	AuthorID   pgtype.Int8 `db:"author_id"`
	AuthorName pgtype.Text `db:"author_name"`
	TagID      pgtype.Int8 `db:"tag_id"`
	TagName    pgtype.Text `db:"tag_name"`
}

// NewsRepository owns the news and news_tags tables. Authors and tags
// named by a news item are resolved through their own repositories.
type NewsRepository struct {
	db      DB
	authors *AuthorRepository
	tags    *TagRepository
}

var _ Repository[model.News, int64] = (*NewsRepository)(nil)

// NewNewsRepository returns a repository backed by db, creating the news
// and news_tags tables if they do not exist yet. The authors and tags
// tables must already exist.
func NewNewsRepository(ctx context.Context, db DB, authors *AuthorRepository, tags *TagRepository) (*NewsRepository, error) {
	for _, ddl := range []string{newsCreateTable, newsTagsCreateTable} {
		if _, err := db.Exec(ctx, ddl); err != nil {
			return nil, fmt.Errorf("creating news tables: %w", err)
		}
	}

	return &NewsRepository{
		db:      db,
		authors: authors,
		tags:    tags,
	}, nil
}

func (r *NewsRepository) ReadAll(ctx context.Context) ([]model.News, error) {
	return r.read(ctx, newsReadAll)
}

func (r *NewsRepository) ReadByID(ctx context.Context, id int64) (*model.News, error) {
	news, err := r.read(ctx, newsReadByID, id)
	if err != nil {
		return nil, err
	}
	if len(news) == 0 {
		return nil, nil
	}
	return &news[0], nil
}

func (r *NewsRepository) read(ctx context.Context, sql string, args ...any) ([]model.News, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dataError(err)
	}

	joined, err := pgx.CollectRows(rows, pgx.RowToStructByName[newsRow])
	if err != nil {
		return nil, dataError(err)
	}

	return collate(joined), nil
}

// collate folds joined rows into one News per distinct id, keeping the
// order in which ids and tags are first encountered. News without tags
// get an empty, non-nil tag list.
func collate(rows []newsRow) []model.News {
	news := make([]model.News, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, seen := index[row.ID]
		if !seen {
			item := model.News{
				ID:      row.ID,
				Title:   row.Title,
				Content: row.Content,
				Tags:    []model.Tag{},
			}
			if row.AuthorID.Valid {
				item.Author = &model.Author{ID: row.AuthorID.Int64, Name: row.AuthorName.String}
			}

			news = append(news, item)
			i = len(news) - 1
			index[row.ID] = i
		}

		if row.TagID.Valid && row.TagID.Int64 > 0 {
			news[i].Tags = append(news[i].Tags, model.Tag{ID: row.TagID.Int64, Name: row.TagName.String})
		}
	}

	return news
}

// Create stores news in one transaction: the author and every tag are
// found or created by name, then the news row and all its tag links are
// inserted. Duplicate tag names are attached once, at their first position.
// Any failure rolls the whole operation back.
func (r *NewsRepository) Create(ctx context.Context, news model.News) (*model.News, error) {
	if news.Author == nil {
		return nil, saveError("Creating news failed, author is required.", nil)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, dataError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	authorID, err := r.authors.FindOrCreate(ctx, tx, news.Author.Name)
	if err != nil {
		return nil, err
	}

	var newsID int64
	err = tx.QueryRow(ctx, newsInsert, news.Title, news.Content, authorID).Scan(&newsID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, saveError("Creating news failed, no Id obtained.", err)
	}
	if err != nil {
		return nil, writeError(err)
	}

	names := uniqueTagNames(news.Tags)
	tags := make([]model.Tag, 0, len(names))
	tagIDs := make([]int64, 0, len(names))
	for _, name := range names {
		tagID, err := r.tags.FindOrCreate(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, model.Tag{ID: tagID, Name: name})
		tagIDs = append(tagIDs, tagID)
	}

	if len(tagIDs) > 0 {
		if _, err := tx.Exec(ctx, newsTagsInsert, newsID, tagIDs); err != nil {
			return nil, dataError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, dataError(err)
	}

	return &model.News{
		ID:      newsID,
		Title:   news.Title,
		Content: news.Content,
		Author:  &model.Author{ID: authorID, Name: news.Author.Name},
		Tags:    tags,
	}, nil
}

// Update replaces title, content and author of an existing news item.
// The author is found or created by name; tag links are left untouched.
func (r *NewsRepository) Update(ctx context.Context, news model.News) (*model.News, error) {
	if news.Author == nil {
		return nil, saveError("Updating news failed, author is required.", nil)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, dataError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	authorID, err := r.authors.FindOrCreate(ctx, tx, news.Author.Name)
	if err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, newsUpdate, news.ID, news.Title, news.Content, authorID)
	if err != nil {
		return nil, writeError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, notFoundError("News", news.ID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, dataError(err)
	}

	updated, err := r.ReadByID(ctx, news.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFoundError("News", news.ID)
	}

	return updated, nil
}

func (r *NewsRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, newsDeleteByID, id)
	if err != nil {
		return false, dataError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *NewsRepository) IsExistedByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, newsExistsByID, id).Scan(&exists); err != nil {
		return false, dataError(err)
	}
	if !exists {
		return false, notFoundError("News", id)
	}
	return true, nil
}

func uniqueTagNames(tags []model.Tag) []string {
	seen := make(map[string]struct{}, len(tags))
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		names = append(names, t.Name)
	}
	return names
}
