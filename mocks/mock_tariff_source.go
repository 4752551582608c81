package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"customsduty/internal/domain"
	"customsduty/internal/duty"
)

// MockTariffSource is a mock implementation of port.TariffSource.
type MockTariffSource struct {
	mock.Mock
}

func (m *MockTariffSource) FetchDutyPayloads(ctx context.Context, cth, country string) (duty.Payloads, error) {
	args := m.Called(ctx, cth, country)
	return args.Get(0).(duty.Payloads), args.Error(1)
}

func (m *MockTariffSource) FetchTariffItems(ctx context.Context, cth, country string) ([]domain.TariffItem, error) {
	args := m.Called(ctx, cth, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TariffItem), args.Error(1)
}

func (m *MockTariffSource) FetchCCR(ctx context.Context, cth, country string) ([]domain.CCRRecord, error) {
	args := m.Called(ctx, cth, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CCRRecord), args.Error(1)
}

func (m *MockTariffSource) FetchSwiftPGA(ctx context.Context, cth, country string) ([]domain.SwiftPGARecord, error) {
	args := m.Called(ctx, cth, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SwiftPGARecord), args.Error(1)
}
