package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"inventario/internal/domain"
	"inventario/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Create(ctx context.Context, userID, invID uuid.UUID, input service.ReportInput) (*domain.Report, error) {
	args := m.Called(ctx, userID, invID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) GetByID(ctx context.Context, userID, repID uuid.UUID) (*domain.Report, error) {
	args := m.Called(ctx, userID, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) ListByInventory(ctx context.Context, userID, invID uuid.UUID, offset, limit int) ([]domain.Report, int, error) {
	args := m.Called(ctx, userID, invID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Report), args.Int(1), args.Error(2)
}

func (m *MockReportService) Update(ctx context.Context, userID, repID uuid.UUID, input service.ReportInput) (*domain.Report, error) {
	args := m.Called(ctx, userID, repID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) Delete(ctx context.Context, userID, repID uuid.UUID) error {
	args := m.Called(ctx, userID, repID)
	return args.Error(0)
}

func (m *MockReportService) ExportCSV(ctx context.Context, userID, repID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportService) ExportXLSX(ctx context.Context, userID, repID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
