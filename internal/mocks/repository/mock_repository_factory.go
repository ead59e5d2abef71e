package repository

import (
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a testify mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewUserRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	ret := _m.Called()
	var r0 repository.UserRepository
	if v, ok := ret.Get(0).(repository.UserRepository); ok {
		r0 = v
	}

	return r0
}

func (_e *MockRepositoryFactory_Expecter) NewUserRepository() *mock.Call {
	return _e.mock.On("NewUserRepository")
}

// NewAddressRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	ret := _m.Called()
	var r0 repository.AddressRepository
	if v, ok := ret.Get(0).(repository.AddressRepository); ok {
		r0 = v
	}

	return r0
}

func (_e *MockRepositoryFactory_Expecter) NewAddressRepository() *mock.Call {
	return _e.mock.On("NewAddressRepository")
}

// NewCartRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewCartRepository() repository.CartRepository {
	ret := _m.Called()
	var r0 repository.CartRepository
	if v, ok := ret.Get(0).(repository.CartRepository); ok {
		r0 = v
	}

	return r0
}

func (_e *MockRepositoryFactory_Expecter) NewCartRepository() *mock.Call {
	return _e.mock.On("NewCartRepository")
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory and asserts its expectations on cleanup.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
