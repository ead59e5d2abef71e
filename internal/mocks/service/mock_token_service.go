package service

import (
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// IssueAccessToken provides a mock function with given fields: principal
func (_m *MockTokenService) IssueAccessToken(principal entity.Principal) (string, error) {
	ret := _m.Called(principal)

	return ret.String(0), ret.Error(1)
}

func (_e *MockTokenService_Expecter) IssueAccessToken(principal interface{}) *mock.Call {
	return _e.mock.On("IssueAccessToken", principal)
}

// IssueRefreshToken provides a mock function with given fields: principal
func (_m *MockTokenService) IssueRefreshToken(principal entity.Principal) (string, error) {
	ret := _m.Called(principal)

	return ret.String(0), ret.Error(1)
}

func (_e *MockTokenService_Expecter) IssueRefreshToken(principal interface{}) *mock.Call {
	return _e.mock.On("IssueRefreshToken", principal)
}

// IssueTokenPair provides a mock function with given fields: principal
func (_m *MockTokenService) IssueTokenPair(principal entity.Principal) (*entity.TokenPair, error) {
	ret := _m.Called(principal)
	var r0 *entity.TokenPair
	if v, ok := ret.Get(0).(*entity.TokenPair); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockTokenService_Expecter) IssueTokenPair(principal interface{}) *mock.Call {
	return _e.mock.On("IssueTokenPair", principal)
}

// VerifyAccessToken provides a mock function with given fields: token
func (_m *MockTokenService) VerifyAccessToken(token string) (*entity.TokenClaims, error) {
	ret := _m.Called(token)
	var r0 *entity.TokenClaims
	if v, ok := ret.Get(0).(*entity.TokenClaims); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockTokenService_Expecter) VerifyAccessToken(token interface{}) *mock.Call {
	return _e.mock.On("VerifyAccessToken", token)
}

// VerifyRefreshToken provides a mock function with given fields: token
func (_m *MockTokenService) VerifyRefreshToken(token string) (*entity.TokenClaims, error) {
	ret := _m.Called(token)
	var r0 *entity.TokenClaims
	if v, ok := ret.Get(0).(*entity.TokenClaims); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockTokenService_Expecter) VerifyRefreshToken(token interface{}) *mock.Call {
	return _e.mock.On("VerifyRefreshToken", token)
}

// NewMockTokenService creates a new instance of MockTokenService and asserts its expectations on cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
