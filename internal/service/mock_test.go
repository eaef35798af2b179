package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockRepository is a testify mock of repository.Repository[T, int64].
type mockRepository[T any] struct {
	mock.Mock
}

func (m *mockRepository[T]) ReadAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockRepository[T]) ReadByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockRepository[T]) Create(ctx context.Context, entity T) (*T, error) {
	args := m.Called(ctx, entity)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockRepository[T]) Update(ctx context.Context, entity T) (*T, error) {
	args := m.Called(ctx, entity)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockRepository[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository[T]) IsExistedByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
