package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"customsduty/internal/duty"
	"customsduty/internal/service"
)

// MockTariffService is a mock implementation of service.TariffService.
type MockTariffService struct {
	mock.Mock
}

func (m *MockTariffService) Lookup(ctx context.Context, req service.LookupRequest) ([]service.CodeReport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CodeReport), args.Error(1)
}

func (m *MockTariffService) Compute(ctx context.Context, in duty.Input) (*duty.Result, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*duty.Result), args.Error(1)
}

func (m *MockTariffService) Countries() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockTariffService) ResolveCountry(q string) string {
	args := m.Called(q)
	return args.String(0)
}
