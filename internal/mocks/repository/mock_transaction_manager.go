package repository

import (
	"context"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function with given fields: ctx, fn
func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	return ret.Error(0)
}

func (_e *MockTransactionManager_Expecter) Execute(ctx interface{}, fn interface{}) *mock.Call {
	return _e.mock.On("Execute", ctx, fn)
}

// NewMockTransactionManager creates a new instance of MockTransactionManager and asserts its expectations on cleanup.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
