package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRoleRepository is a testify mock of repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

type MockRoleRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRoleRepository) EXPECT() *MockRoleRepository_Expecter {
	return &MockRoleRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, role
func (_m *MockRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	ret := _m.Called(ctx, role)

	return ret.Error(0)
}

func (_e *MockRoleRepository_Expecter) Create(ctx interface{}, role interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, role)
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.Role
	if v, ok := ret.Get(0).(*entity.Role); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockRoleRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

// List provides a mock function with given fields: ctx
func (_m *MockRoleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	ret := _m.Called(ctx)
	var r0 []*entity.Role
	if v, ok := ret.Get(0).([]*entity.Role); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockRoleRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

// Update provides a mock function with given fields: ctx, role
func (_m *MockRoleRepository) Update(ctx context.Context, role *entity.Role) error {
	ret := _m.Called(ctx, role)

	return ret.Error(0)
}

func (_e *MockRoleRepository_Expecter) Update(ctx interface{}, role interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, role)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockRoleRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockRoleRepository creates a new instance of MockRoleRepository and asserts its expectations on cleanup.
func NewMockRoleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRoleRepository {
	m := &MockRoleRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
