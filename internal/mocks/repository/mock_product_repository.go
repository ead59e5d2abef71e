package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a testify mock of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Create(ctx interface{}, product interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, product)
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.Product
	if v, ok := ret.Get(0).(*entity.Product); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

// List provides a mock function with given fields: ctx
func (_m *MockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	ret := _m.Called(ctx)
	var r0 []*entity.Product
	if v, ok := ret.Get(0).([]*entity.Product); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

// Update provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Update(ctx interface{}, product interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, product)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// Search provides a mock function with given fields: ctx, query
func (_m *MockProductRepository) Search(ctx context.Context, query entity.ProductQuery) ([]*entity.Product, int64, error) {
	ret := _m.Called(ctx, query)
	var r0 []*entity.Product
	if v, ok := ret.Get(0).([]*entity.Product); ok {
		r0 = v
	}
	var r1 int64
	if v, ok := ret.Get(1).(int64); ok {
		r1 = v
	}

	return r0, r1, ret.Error(2)
}

func (_e *MockProductRepository_Expecter) Search(ctx interface{}, query interface{}) *mock.Call {
	return _e.mock.On("Search", ctx, query)
}

// NewMockProductRepository creates a new instance of MockProductRepository and asserts its expectations on cleanup.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
