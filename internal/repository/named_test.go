package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/newsroom/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock
}

func newAuthorRepository(t *testing.T) (*AuthorRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock := newMockPool(t)
	mock.ExpectExec(authorSQL.createTable).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	repo, err := NewAuthorRepository(context.Background(), mock)
	require.NoError(t, err)

	return repo, mock
}

func authorRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name"})
}

func TestNewAuthorRepository_CreateTableFails(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec(authorSQL.createTable).WillReturnError(errors.New("connection refused"))

	repo, err := NewAuthorRepository(context.Background(), mock)

	require.Error(t, err)
	assert.Nil(t, repo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_ReadAll(t *testing.T) {
	repo, mock := newAuthorRepository(t)

	mock.ExpectQuery(authorSQL.readAll).
		WillReturnRows(authorRows().
			AddRow(int64(1), "Egor Semenov").
			AddRow(int64(2), "Anna Ivanova"))

	authors, err := repo.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.Author{
		{ID: 1, Name: "Egor Semenov"},
		{ID: 2, Name: "Anna Ivanova"},
	}, authors)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_ReadAll_QueryError(t *testing.T) {
	repo, mock := newAuthorRepository(t)

	dbErr := errors.New("connection reset by peer")
	mock.ExpectQuery(authorSQL.readAll).WillReturnError(dbErr)

	authors, err := repo.ReadAll(context.Background())

	require.Error(t, err)
	assert.Nil(t, authors)
	assert.ErrorIs(t, err, ErrData)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, "Error load data", err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_ReadByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.readByID).
			WithArgs(int64(1)).
			WillReturnRows(authorRows().AddRow(int64(1), "Egor Semenov"))

		author, err := repo.ReadByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, &model.Author{ID: 1, Name: "Egor Semenov"}, author)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.readByID).
			WithArgs(int64(42)).
			WillReturnRows(authorRows())

		author, err := repo.ReadByID(context.Background(), 42)

		require.NoError(t, err)
		assert.Nil(t, author)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthorRepository_ReadByName(t *testing.T) {
	repo, mock := newAuthorRepository(t)

	mock.ExpectQuery(authorSQL.readByName).
		WithArgs("Egor Semenov").
		WillReturnRows(authorRows().AddRow(int64(3), "Egor Semenov"))

	author, err := repo.ReadByName(context.Background(), "Egor Semenov")

	require.NoError(t, err)
	assert.Equal(t, &model.Author{ID: 3, Name: "Egor Semenov"}, author)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_CountByName(t *testing.T) {
	tests := []struct {
		name  string
		count int64
	}{
		{name: "absent name", count: 0},
		{name: "present name", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newAuthorRepository(t)

			mock.ExpectQuery(authorSQL.countByName).
				WithArgs("Egor Semenov").
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(tt.count))

			count, err := repo.CountByName(context.Background(), "Egor Semenov")

			require.NoError(t, err)
			assert.Equal(t, tt.count, count)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAuthorRepository_Create(t *testing.T) {
	t.Run("returns generated id", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.create).
			WithArgs("Egor Semenov").
			WillReturnRows(authorRows().AddRow(int64(5), "Egor Semenov"))

		author, err := repo.Create(context.Background(), model.Author{Name: "Egor Semenov"})

		require.NoError(t, err)
		assert.Equal(t, &model.Author{ID: 5, Name: "Egor Semenov"}, author)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("taken name inserts nothing", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.create).
			WithArgs("Egor Semenov").
			WillReturnRows(authorRows())

		author, err := repo.Create(context.Background(), model.Author{Name: "Egor Semenov"})

		assert.Nil(t, author)
		assert.ErrorIs(t, err, ErrSave)
		assert.Equal(t, "Creating author failed, no Id obtained.", err.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.create).
			WithArgs("Egor Semenov").
			WillReturnError(errors.New("timeout"))

		_, err := repo.Create(context.Background(), model.Author{Name: "Egor Semenov"})

		assert.ErrorIs(t, err, ErrData)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthorRepository_Update(t *testing.T) {
	t.Run("existing id", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.update).
			WithArgs(int64(1), "Egor S. Semenov").
			WillReturnRows(authorRows().AddRow(int64(1), "Egor S. Semenov"))

		author, err := repo.Update(context.Background(), model.Author{ID: 1, Name: "Egor S. Semenov"})

		require.NoError(t, err)
		assert.Equal(t, &model.Author{ID: 1, Name: "Egor S. Semenov"}, author)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.update).
			WithArgs(int64(9), "Nobody").
			WillReturnRows(authorRows())

		author, err := repo.Update(context.Background(), model.Author{ID: 9, Name: "Nobody"})

		assert.Nil(t, author)
		assert.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("name taken by another author", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.update).
			WithArgs(int64(1), "Anna Ivanova").
			WillReturnError(&pgconn.PgError{Code: "23505", TableName: "authors", ConstraintName: "authors_name_key"})

		_, err := repo.Update(context.Background(), model.Author{ID: 1, Name: "Anna Ivanova"})

		assert.ErrorIs(t, err, ErrSave)
		assert.Equal(t, "Author with this Name already exists", err.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthorRepository_DeleteByID(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "row removed", affected: 1, want: true},
		{name: "no row", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newAuthorRepository(t)

			mock.ExpectExec(authorSQL.deleteByID).
				WithArgs(int64(1)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			deleted, err := repo.DeleteByID(context.Background(), 1)

			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAuthorRepository_IsExistedByID(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.existsByID).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.IsExistedByID(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, exists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent fails instead of returning false", func(t *testing.T) {
		repo, mock := newAuthorRepository(t)

		mock.ExpectQuery(authorSQL.existsByID).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.IsExistedByID(context.Background(), 7)

		assert.False(t, exists)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, "Author Id does not exist. Id is: 7", err.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthorRepository_FindOrCreate(t *testing.T) {
	repo, mock := newAuthorRepository(t)

	mock.ExpectQuery(authorSQL.findOrCreate).
		WithArgs("Egor Semenov").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := repo.FindOrCreate(context.Background(), mock, "Egor Semenov")

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_FindOrCreate_NameTooLong(t *testing.T) {
	repo, mock := newAuthorRepository(t)

	mock.ExpectQuery(authorSQL.findOrCreate).
		WithArgs("Egor Semenov").
		WillReturnError(&pgconn.PgError{Code: "22001", TableName: "authors", ColumnName: "name"})

	_, err := repo.FindOrCreate(context.Background(), mock, "Egor Semenov")

	assert.ErrorIs(t, err, ErrSave)
	assert.Equal(t, "One or more values are too long", err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_Create_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec(tagSQL.createTable).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	repo, err := NewTagRepository(context.Background(), mock)
	require.NoError(t, err)

	mock.ExpectQuery(tagSQL.create).
		WithArgs("FINANCE").
		WillReturnError(&pgconn.PgError{Code: "23505", TableName: "tags", ConstraintName: "tags_name_key"})

	_, err = repo.Create(context.Background(), model.Tag{Name: "FINANCE"})

	assert.ErrorIs(t, err, ErrSave)
	assert.Equal(t, "Tag with this Name already exists", err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_CreateAndRead(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec(tagSQL.createTable).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	repo, err := NewTagRepository(context.Background(), mock)
	require.NoError(t, err)

	mock.ExpectQuery(tagSQL.create).
		WithArgs("FINANCE").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "FINANCE"))
	mock.ExpectQuery(tagSQL.readByID).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "FINANCE"))

	created, err := repo.Create(context.Background(), model.Tag{Name: "FINANCE"})
	require.NoError(t, err)

	read, err := repo.ReadByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, read)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_IsExistedByID_Absent(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec(tagSQL.createTable).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	repo, err := NewTagRepository(context.Background(), mock)
	require.NoError(t, err)

	mock.ExpectQuery(tagSQL.existsByID).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	_, err = repo.IsExistedByID(context.Background(), 4)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Tag Id does not exist. Id is: 4", err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
