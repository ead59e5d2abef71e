package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockObjectStorage is a testify mock of service.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

type MockObjectStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockObjectStorage) EXPECT() *MockObjectStorage_Expecter {
	return &MockObjectStorage_Expecter{mock: &_m.Mock}
}

// Put provides a mock function with given fields: ctx, key, contentType, body
func (_m *MockObjectStorage) Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	ret := _m.Called(ctx, key, contentType, body)

	return ret.String(0), ret.Error(1)
}

func (_e *MockObjectStorage_Expecter) Put(ctx interface{}, key interface{}, contentType interface{}, body interface{}) *mock.Call {
	return _e.mock.On("Put", ctx, key, contentType, body)
}

// Delete provides a mock function with given fields: ctx, key
func (_m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

func (_e *MockObjectStorage_Expecter) Delete(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, key)
}

// NewMockObjectStorage creates a new instance of MockObjectStorage and asserts its expectations on cleanup.
func NewMockObjectStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockObjectStorage {
	m := &MockObjectStorage{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
