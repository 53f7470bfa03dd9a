package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"inventario/internal/domain"
)

// MockInventoryRepo is a mock implementation of port.InventoryRepository.
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) Create(ctx context.Context, inv *domain.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInventoryRepo) GetByID(ctx context.Context, invID uuid.UUID) (*domain.Inventory, error) {
	args := m.Called(ctx, invID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepo) ListVisibleTo(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Inventory, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Inventory), args.Int(1), args.Error(2)
}

func (m *MockInventoryRepo) Update(ctx context.Context, inv *domain.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInventoryRepo) Delete(ctx context.Context, invID uuid.UUID) error {
	args := m.Called(ctx, invID)
	return args.Error(0)
}

func (m *MockInventoryRepo) CountElements(ctx context.Context, invID uuid.UUID) (int, error) {
	args := m.Called(ctx, invID)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepo) AddMember(ctx context.Context, member *domain.InventoryMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockInventoryRepo) IsMember(ctx context.Context, invID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, invID, userID)
	return args.Bool(0), args.Error(1)
}
