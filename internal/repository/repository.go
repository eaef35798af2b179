// Package repository handles all interactions with the database.
//
// It contains the SQL for every entity and the row-to-model conversions,
// abstracting SQL away from the service layer. Every repository satisfies
// the same generic contract; failures are reported as *Error values whose
// kind is one of ErrData, ErrNotFound or ErrSave.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository is the CRUD contract shared by all entities.
type Repository[T any, ID comparable] interface {
	// ReadAll returns every row in id order.
	ReadAll(ctx context.Context) ([]T, error)

	// ReadByID returns nil, nil when no row matches.
	ReadByID(ctx context.Context, id ID) (*T, error)

	// Create inserts entity and returns it with the generated id.
	Create(ctx context.Context, entity T) (*T, error)

	// Update replaces the stored fields of the row with entity's id.
	Update(ctx context.Context, entity T) (*T, error)

	// DeleteByID reports whether a row was removed.
	DeleteByID(ctx context.Context, id ID) (bool, error)

	// IsExistedByID returns true, or an ErrNotFound error. It never
	// returns false with a nil error.
	IsExistedByID(ctx context.Context, id ID) (bool, error)
}

// NamedRepository is a Repository for entities identified by a unique name.
type NamedRepository[T any, ID comparable] interface {
	Repository[T, ID]

	// ReadByName returns nil, nil when no row has exactly that name.
	ReadByName(ctx context.Context, name string) (*T, error)

	// CountByName returns the number of rows with exactly that name.
	CountByName(ctx context.Context, name string) (int64, error)
}

// Querier runs statements. It is satisfied by *pgxpool.Pool, pgx.Tx and
// pgxmock, so the same code runs inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is a Querier that can also open transactions.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}
