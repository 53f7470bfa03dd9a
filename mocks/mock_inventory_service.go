package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"inventario/internal/domain"
	"inventario/internal/service"
)

// MockInventoryService is a mock implementation of service.InventoryService.
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Create(ctx context.Context, ownerID uuid.UUID, input service.InventoryInput) (*domain.Inventory, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryService) GetByID(ctx context.Context, userID, invID uuid.UUID) (*domain.Inventory, error) {
	args := m.Called(ctx, userID, invID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Inventory, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Inventory), args.Int(1), args.Error(2)
}

func (m *MockInventoryService) Update(ctx context.Context, userID, invID uuid.UUID, input service.InventoryInput) (*domain.Inventory, error) {
	args := m.Called(ctx, userID, invID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryService) Delete(ctx context.Context, userID, invID uuid.UUID) error {
	args := m.Called(ctx, userID, invID)
	return args.Error(0)
}

func (m *MockInventoryService) Share(ctx context.Context, userID, invID uuid.UUID, input service.ShareInput) (*domain.AccessCode, error) {
	args := m.Called(ctx, userID, invID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessCode), args.Error(1)
}

func (m *MockInventoryService) Join(ctx context.Context, userID uuid.UUID, input service.JoinInput) (*domain.Inventory, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryService) CanAccess(ctx context.Context, userID, invID uuid.UUID) error {
	args := m.Called(ctx, userID, invID)
	return args.Error(0)
}
