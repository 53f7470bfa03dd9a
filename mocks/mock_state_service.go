package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"inventario/internal/domain"
	"inventario/internal/service"
)

// MockStateService is a mock implementation of service.StateService.
type MockStateService struct {
	mock.Mock
}

func (m *MockStateService) Create(ctx context.Context, input service.StateInput) (*domain.State, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.State), args.Error(1)
}

func (m *MockStateService) GetByID(ctx context.Context, stateID uuid.UUID) (*domain.State, error) {
	args := m.Called(ctx, stateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.State), args.Error(1)
}

func (m *MockStateService) List(ctx context.Context, offset, limit int) ([]domain.State, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.State), args.Int(1), args.Error(2)
}

func (m *MockStateService) Update(ctx context.Context, stateID uuid.UUID, input service.StateInput) (*domain.State, error) {
	args := m.Called(ctx, stateID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.State), args.Error(1)
}

func (m *MockStateService) Delete(ctx context.Context, stateID uuid.UUID) error {
	args := m.Called(ctx, stateID)
	return args.Error(0)
}
