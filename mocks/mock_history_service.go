package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"credigate/internal/domain"
)

// MockHistoryService is a mock implementation of service.HistoryService.
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Consultation), args.Int(1), args.Error(2)
}

func (m *MockHistoryService) Counts(ctx context.Context) ([]domain.SlugCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SlugCount), args.Error(1)
}

func (m *MockHistoryService) ExportCSV(ctx context.Context, w io.Writer, filter domain.ConsultationFilter) error {
	args := m.Called(ctx, w, filter)
	return args.Error(0)
}

func (m *MockHistoryService) ExportXLSX(ctx context.Context, w io.Writer, filter domain.ConsultationFilter) error {
	args := m.Called(ctx, w, filter)
	return args.Error(0)
}
