package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"customsduty/internal/domain"
)

// MockHSNService is a mock implementation of service.HSNService.
type MockHSNService struct {
	mock.Mock
}

func (m *MockHSNService) Search(ctx context.Context, code string) ([]domain.HSNCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HSNCode), args.Error(1)
}
