package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a testify mock of repository.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

type MockAddressRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAddressRepository) EXPECT() *MockAddressRepository_Expecter {
	return &MockAddressRepository_Expecter{mock: &_m.Mock}
}

// FindByUser provides a mock function with given fields: ctx, userID
func (_m *MockAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*entity.Address
	if v, ok := ret.Get(0).([]*entity.Address); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockAddressRepository_Expecter) FindByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("FindByUser", ctx, userID)
}

// ReplaceForUser provides a mock function with given fields: ctx, userID, addresses
func (_m *MockAddressRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, addresses []*entity.Address) error {
	ret := _m.Called(ctx, userID, addresses)

	return ret.Error(0)
}

func (_e *MockAddressRepository_Expecter) ReplaceForUser(ctx interface{}, userID interface{}, addresses interface{}) *mock.Call {
	return _e.mock.On("ReplaceForUser", ctx, userID, addresses)
}

// DeleteByUser provides a mock function with given fields: ctx, userID
func (_m *MockAddressRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

func (_e *MockAddressRepository_Expecter) DeleteByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("DeleteByUser", ctx, userID)
}

// NewMockAddressRepository creates a new instance of MockAddressRepository and asserts its expectations on cleanup.
func NewMockAddressRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAddressRepository {
	m := &MockAddressRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
