package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockImageRepository is a testify mock of repository.ImageRepository.
type MockImageRepository struct {
	mock.Mock
}

type MockImageRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockImageRepository) EXPECT() *MockImageRepository_Expecter {
	return &MockImageRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, image
func (_m *MockImageRepository) Create(ctx context.Context, image *entity.Image) error {
	ret := _m.Called(ctx, image)

	return ret.Error(0)
}

func (_e *MockImageRepository_Expecter) Create(ctx interface{}, image interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, image)
}

// List provides a mock function with given fields: ctx
func (_m *MockImageRepository) List(ctx context.Context) ([]*entity.Image, error) {
	ret := _m.Called(ctx)
	var r0 []*entity.Image
	if v, ok := ret.Get(0).([]*entity.Image); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockImageRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

// NewMockImageRepository creates a new instance of MockImageRepository and asserts its expectations on cleanup.
func NewMockImageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageRepository {
	m := &MockImageRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
