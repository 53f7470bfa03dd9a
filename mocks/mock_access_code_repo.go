package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"inventario/internal/domain"
)

// MockAccessCodeRepo is a mock implementation of port.AccessCodeRepository.
type MockAccessCodeRepo struct {
	mock.Mock
}

func (m *MockAccessCodeRepo) Create(ctx context.Context, code *domain.AccessCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockAccessCodeRepo) GetByCode(ctx context.Context, code string) (*domain.AccessCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessCode), args.Error(1)
}

func (m *MockAccessCodeRepo) DeleteExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
