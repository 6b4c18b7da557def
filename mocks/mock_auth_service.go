package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"credigate/internal/service"
	"credigate/internal/session"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, tokens session.Store, input service.LoginInput) error {
	args := m.Called(ctx, tokens, input)
	return args.Error(0)
}

func (m *MockAuthService) Logout(tokens session.Store) error {
	args := m.Called(tokens)
	return args.Error(0)
}

func (m *MockAuthService) Info(tokens session.Store) service.SessionInfo {
	args := m.Called(tokens)
	return args.Get(0).(service.SessionInfo)
}
