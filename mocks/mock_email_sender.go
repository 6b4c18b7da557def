package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"credigate/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendReportEmail(ctx context.Context, toEmail, protocol string, status domain.CreditStatus) error {
	args := m.Called(ctx, toEmail, protocol, status)
	return args.Error(0)
}
