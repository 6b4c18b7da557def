package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// MockReportArchive is a mock implementation of port.ReportArchive.
type MockReportArchive struct {
	mock.Mock
}

func (m *MockReportArchive) Put(ctx context.Context, protocol string, payload json.RawMessage) error {
	args := m.Called(ctx, protocol, payload)
	return args.Error(0)
}

func (m *MockReportArchive) Get(ctx context.Context, protocol string) (json.RawMessage, error) {
	args := m.Called(ctx, protocol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
