package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"customsduty/internal/domain"
)

// MockHSNSearcher is a mock implementation of port.HSNSearcher.
type MockHSNSearcher struct {
	mock.Mock
}

func (m *MockHSNSearcher) Search(ctx context.Context, code string) ([]domain.HSNCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HSNCode), args.Error(1)
}
