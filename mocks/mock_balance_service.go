package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"credigate/internal/domain"
	"credigate/internal/session"
)

// MockBalanceService is a mock implementation of service.BalanceService.
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) Balance(ctx context.Context, tokens session.Store) (*domain.Balance, error) {
	args := m.Called(ctx, tokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}
