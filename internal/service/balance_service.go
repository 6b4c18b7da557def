package service

import (
	"context"

	"credigate/internal/apiclient"
	"credigate/internal/domain"
	"credigate/internal/session"
)

// BalanceService relays the user's prepaid balance from the backend.
type BalanceService interface {
	Balance(ctx context.Context, tokens session.Store) (*domain.Balance, error)
}

type balanceService struct {
	backend *apiclient.Client
}

// NewBalanceService creates a BalanceService over the backend transport.
func NewBalanceService(backend *apiclient.Client) BalanceService {
	return &balanceService{backend: backend}
}

func (s *balanceService) Balance(ctx context.Context, tokens session.Store) (*domain.Balance, error) {
	auth := apiclient.NewAuthClient(s.backend, tokens)
	var balance domain.Balance
	if err := auth.Get(ctx, "/balance", &balance, nil); err != nil {
		return nil, err
	}
	return &balance, nil
}
