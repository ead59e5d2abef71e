package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLoginLimiter is a testify mock of service.LoginLimiter.
type MockLoginLimiter struct {
	mock.Mock
}

type MockLoginLimiter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLoginLimiter) EXPECT() *MockLoginLimiter_Expecter {
	return &MockLoginLimiter_Expecter{mock: &_m.Mock}
}

// Allow provides a mock function with given fields: ctx, key
func (_m *MockLoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockLoginLimiter_Expecter) Allow(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Allow", ctx, key)
}

// Fail provides a mock function with given fields: ctx, key
func (_m *MockLoginLimiter) Fail(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

func (_e *MockLoginLimiter_Expecter) Fail(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Fail", ctx, key)
}

// Reset provides a mock function with given fields: ctx, key
func (_m *MockLoginLimiter) Reset(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

func (_e *MockLoginLimiter_Expecter) Reset(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Reset", ctx, key)
}

// NewMockLoginLimiter creates a new instance of MockLoginLimiter and asserts its expectations on cleanup.
func NewMockLoginLimiter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLoginLimiter {
	m := &MockLoginLimiter{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
