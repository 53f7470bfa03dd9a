package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"inventario/internal/domain"
)

// MockElementRepo is a mock implementation of port.ElementRepository.
type MockElementRepo struct {
	mock.Mock
}

func (m *MockElementRepo) Create(ctx context.Context, el *domain.Element) error {
	args := m.Called(ctx, el)
	return args.Error(0)
}

func (m *MockElementRepo) GetByID(ctx context.Context, elID uuid.UUID) (*domain.Element, error) {
	args := m.Called(ctx, elID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Element), args.Error(1)
}

func (m *MockElementRepo) ListByInventory(ctx context.Context, invID uuid.UUID, offset, limit int) ([]domain.Element, int, error) {
	args := m.Called(ctx, invID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Element), args.Int(1), args.Error(2)
}

func (m *MockElementRepo) Update(ctx context.Context, el *domain.Element) error {
	args := m.Called(ctx, el)
	return args.Error(0)
}

func (m *MockElementRepo) UpdateImageKey(ctx context.Context, elID uuid.UUID, imageKey string) error {
	args := m.Called(ctx, elID, imageKey)
	return args.Error(0)
}

func (m *MockElementRepo) Delete(ctx context.Context, elID uuid.UUID) error {
	args := m.Called(ctx, elID)
	return args.Error(0)
}
