package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSellerRepository is a testify mock of repository.SellerRepository.
type MockSellerRepository struct {
	mock.Mock
}

type MockSellerRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSellerRepository) EXPECT() *MockSellerRepository_Expecter {
	return &MockSellerRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, seller
func (_m *MockSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	ret := _m.Called(ctx, seller)

	return ret.Error(0)
}

func (_e *MockSellerRepository_Expecter) Create(ctx interface{}, seller interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, seller)
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.Seller
	if v, ok := ret.Get(0).(*entity.Seller); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockSellerRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

// FindByEmail provides a mock function with given fields: ctx, email
func (_m *MockSellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	ret := _m.Called(ctx, email)
	var r0 *entity.Seller
	if v, ok := ret.Get(0).(*entity.Seller); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockSellerRepository_Expecter) FindByEmail(ctx interface{}, email interface{}) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

// Update provides a mock function with given fields: ctx, seller
func (_m *MockSellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	ret := _m.Called(ctx, seller)

	return ret.Error(0)
}

func (_e *MockSellerRepository_Expecter) Update(ctx interface{}, seller interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, seller)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockSellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockSellerRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockSellerRepository creates a new instance of MockSellerRepository and asserts its expectations on cleanup.
func NewMockSellerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSellerRepository {
	m := &MockSellerRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
