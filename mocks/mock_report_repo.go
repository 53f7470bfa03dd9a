package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"inventario/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Create(ctx context.Context, rep *domain.Report) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockReportRepo) GetByID(ctx context.Context, repID uuid.UUID) (*domain.Report, error) {
	args := m.Called(ctx, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportRepo) ListByInventory(ctx context.Context, invID uuid.UUID, offset, limit int) ([]domain.Report, int, error) {
	args := m.Called(ctx, invID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Report), args.Int(1), args.Error(2)
}

func (m *MockReportRepo) Update(ctx context.Context, rep *domain.Report) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockReportRepo) Delete(ctx context.Context, repID uuid.UUID) error {
	args := m.Called(ctx, repID)
	return args.Error(0)
}
