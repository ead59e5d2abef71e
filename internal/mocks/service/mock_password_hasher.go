package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

// Hash provides a mock function with given fields: password
func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_e *MockPasswordHasher_Expecter) Hash(password interface{}) *mock.Call {
	return _e.mock.On("Hash", password)
}

// Check provides a mock function with given fields: password, hash
func (_m *MockPasswordHasher) Check(password string, hash string) bool {
	ret := _m.Called(password, hash)

	return ret.Bool(0)
}

func (_e *MockPasswordHasher_Expecter) Check(password interface{}, hash interface{}) *mock.Call {
	return _e.mock.On("Check", password, hash)
}

// ValidatePasswordStrength provides a mock function with given fields: password
func (_m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	ret := _m.Called(password)

	return ret.Error(0)
}

func (_e *MockPasswordHasher_Expecter) ValidatePasswordStrength(password interface{}) *mock.Call {
	return _e.mock.On("ValidatePasswordStrength", password)
}

// NewMockPasswordHasher creates a new instance of MockPasswordHasher and asserts its expectations on cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
