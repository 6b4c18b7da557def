package mocks

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"credigate/internal/consulta"
	"credigate/internal/service"
	"credigate/internal/session"
)

// MockConsultationService is a mock implementation of service.ConsultationService.
type MockConsultationService struct {
	mock.Mock
}

func (m *MockConsultationService) Submit(ctx context.Context, tokens session.Store, slug string, form url.Values) (consulta.State, error) {
	args := m.Called(ctx, tokens, slug, form)
	return args.Get(0).(consulta.State), args.Error(1)
}

func (m *MockConsultationService) Catalog() []service.CatalogEntry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]service.CatalogEntry)
}
