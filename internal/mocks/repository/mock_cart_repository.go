package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a testify mock of repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

type MockCartRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCartRepository) EXPECT() *MockCartRepository_Expecter {
	return &MockCartRepository_Expecter{mock: &_m.Mock}
}

// FindItem provides a mock function with given fields: ctx, userID, productID
func (_m *MockCartRepository) FindItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*entity.CartItem, error) {
	ret := _m.Called(ctx, userID, productID)
	var r0 *entity.CartItem
	if v, ok := ret.Get(0).(*entity.CartItem); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCartRepository_Expecter) FindItem(ctx interface{}, userID interface{}, productID interface{}) *mock.Call {
	return _e.mock.On("FindItem", ctx, userID, productID)
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.CartItem
	if v, ok := ret.Get(0).(*entity.CartItem); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCartRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

// Create provides a mock function with given fields: ctx, item
func (_m *MockCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	ret := _m.Called(ctx, item)

	return ret.Error(0)
}

func (_e *MockCartRepository_Expecter) Create(ctx interface{}, item interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, item)
}

// UpdateQuantity provides a mock function with given fields: ctx, id, quantity
func (_m *MockCartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	ret := _m.Called(ctx, id, quantity)

	return ret.Error(0)
}

func (_e *MockCartRepository_Expecter) UpdateQuantity(ctx interface{}, id interface{}, quantity interface{}) *mock.Call {
	return _e.mock.On("UpdateQuantity", ctx, id, quantity)
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *MockCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*entity.CartLine
	if v, ok := ret.Get(0).([]*entity.CartLine); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCartRepository_Expecter) ListByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("ListByUser", ctx, userID)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockCartRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// DeleteByUser provides a mock function with given fields: ctx, userID
func (_m *MockCartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

func (_e *MockCartRepository_Expecter) DeleteByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("DeleteByUser", ctx, userID)
}

// NewMockCartRepository creates a new instance of MockCartRepository and asserts its expectations on cleanup.
func NewMockCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartRepository {
	m := &MockCartRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
