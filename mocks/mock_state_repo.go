package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"inventario/internal/domain"
)

// MockStateRepo is a mock implementation of port.StateRepository.
type MockStateRepo struct {
	mock.Mock
}

func (m *MockStateRepo) Create(ctx context.Context, state *domain.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStateRepo) GetByID(ctx context.Context, stateID uuid.UUID) (*domain.State, error) {
	args := m.Called(ctx, stateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.State), args.Error(1)
}

func (m *MockStateRepo) List(ctx context.Context, offset, limit int) ([]domain.State, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.State), args.Int(1), args.Error(2)
}

func (m *MockStateRepo) Update(ctx context.Context, state *domain.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStateRepo) Delete(ctx context.Context, stateID uuid.UUID) error {
	args := m.Called(ctx, stateID)
	return args.Error(0)
}

func (m *MockStateRepo) CountElements(ctx context.Context, stateID uuid.UUID) (int, error) {
	args := m.Called(ctx, stateID)
	return args.Int(0), args.Error(1)
}
