package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"credigate/internal/domain"
)

// MockConsultationRepo is a mock implementation of port.ConsultationRepository.
type MockConsultationRepo struct {
	mock.Mock
}

func (m *MockConsultationRepo) Create(ctx context.Context, c *domain.Consultation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConsultationRepo) List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Consultation), args.Int(1), args.Error(2)
}

func (m *MockConsultationRepo) CountBySlug(ctx context.Context) ([]domain.SlugCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SlugCount), args.Error(1)
}
