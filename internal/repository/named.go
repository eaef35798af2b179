package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// namedSQL is the statement set of a table with (id, name) columns.
// Every read returns the columns "id" and "name".
type namedSQL struct {
	createTable  string
	readAll      string
	readByID     string
	readByName   string
	countByName  string
	create       string
	findOrCreate string
	update       string
	deleteByID   string
	existsByID   string
}

// namedTable implements NamedRepository for any entity stored as
// (id, name) with a unique name. T must carry `db:"id"` and `db:"name"`
// tags so rows can be scanned by column name.
type namedTable[T any] struct {
	db     DB
	entity string // lower case, used in save messages
	label  string // capitalized, used in not-found messages
	sql    namedSQL
	fields func(T) (id int64, name string)
}

func (r *namedTable[T]) ensureTable(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, r.sql.createTable); err != nil {
		return fmt.Errorf("creating %s table: %w", r.entity, err)
	}
	return nil
}

func (r *namedTable[T]) ReadAll(ctx context.Context) ([]T, error) {
	rows, err := r.db.Query(ctx, r.sql.readAll)
	if err != nil {
		return nil, dataError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, dataError(err)
	}

	return items, nil
}

func (r *namedTable[T]) ReadByID(ctx context.Context, id int64) (*T, error) {
	return r.readOne(ctx, r.sql.readByID, id)
}

func (r *namedTable[T]) ReadByName(ctx context.Context, name string) (*T, error) {
	return r.readOne(ctx, r.sql.readByName, name)
}

func (r *namedTable[T]) readOne(ctx context.Context, sql string, arg any) (*T, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, dataError(err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dataError(err)
	}

	return item, nil
}

func (r *namedTable[T]) CountByName(ctx context.Context, name string) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, r.sql.countByName, name).Scan(&count); err != nil {
		return 0, dataError(err)
	}
	return count, nil
}

// Create inserts a row unless the name is taken. A taken name inserts
// nothing, returns no id and is reported as a save error.
func (r *namedTable[T]) Create(ctx context.Context, entity T) (*T, error) {
	_, name := r.fields(entity)

	rows, err := r.db.Query(ctx, r.sql.create, name)
	if err != nil {
		return nil, writeError(err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, saveError(fmt.Sprintf("Creating %s failed, no Id obtained.", r.entity), err)
	}
	if err != nil {
		return nil, writeError(err)
	}

	return item, nil
}

// FindOrCreate returns the id of the row named name, inserting it first
// if needed. It is a single upsert statement, so concurrent callers
// resolving the same new name get the same row.
func (r *namedTable[T]) FindOrCreate(ctx context.Context, q Querier, name string) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, r.sql.findOrCreate, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, saveError(fmt.Sprintf("Creating %s failed, no Id obtained.", r.entity), err)
	}
	if err != nil {
		return 0, writeError(err)
	}
	return id, nil
}

func (r *namedTable[T]) Update(ctx context.Context, entity T) (*T, error) {
	id, name := r.fields(entity)

	rows, err := r.db.Query(ctx, r.sql.update, id, name)
	if err != nil {
		return nil, writeError(err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundError(r.label, id)
	}
	if err != nil {
		return nil, writeError(err)
	}

	return item, nil
}

func (r *namedTable[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, r.sql.deleteByID, id)
	if err != nil {
		return false, dataError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *namedTable[T]) IsExistedByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, r.sql.existsByID, id).Scan(&exists); err != nil {
		return false, dataError(err)
	}
	if !exists {
		return false, notFoundError(r.label, id)
	}
	return true, nil
}
