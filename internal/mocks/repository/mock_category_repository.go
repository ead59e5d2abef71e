package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a testify mock of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

type MockCategoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryRepository) EXPECT() *MockCategoryRepository_Expecter {
	return &MockCategoryRepository_Expecter{mock: &_m.Mock}
}

// CreateCategory provides a mock function with given fields: ctx, category
func (_m *MockCategoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	ret := _m.Called(ctx, category)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) CreateCategory(ctx interface{}, category interface{}) *mock.Call {
	return _e.mock.On("CreateCategory", ctx, category)
}

// FindCategoryByID provides a mock function with given fields: ctx, id
func (_m *MockCategoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.Category
	if v, ok := ret.Get(0).(*entity.Category); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) FindCategoryByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindCategoryByID", ctx, id)
}

// ListCategories provides a mock function with given fields: ctx
func (_m *MockCategoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)
	var r0 []*entity.Category
	if v, ok := ret.Get(0).([]*entity.Category); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) ListCategories(ctx interface{}) *mock.Call {
	return _e.mock.On("ListCategories", ctx)
}

// CreateSubcategory provides a mock function with given fields: ctx, subcategory
func (_m *MockCategoryRepository) CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	ret := _m.Called(ctx, subcategory)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) CreateSubcategory(ctx interface{}, subcategory interface{}) *mock.Call {
	return _e.mock.On("CreateSubcategory", ctx, subcategory)
}

// FindSubcategoryByID provides a mock function with given fields: ctx, id
func (_m *MockCategoryRepository) FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.Subcategory
	if v, ok := ret.Get(0).(*entity.Subcategory); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) FindSubcategoryByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindSubcategoryByID", ctx, id)
}

// ListSubcategories provides a mock function with given fields: ctx
func (_m *MockCategoryRepository) ListSubcategories(ctx context.Context) ([]*entity.Subcategory, error) {
	ret := _m.Called(ctx)
	var r0 []*entity.Subcategory
	if v, ok := ret.Get(0).([]*entity.Subcategory); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) ListSubcategories(ctx interface{}) *mock.Call {
	return _e.mock.On("ListSubcategories", ctx)
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository and asserts its expectations on cleanup.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
