package service

import (
	"bytes"
	"context"

	"github.com/google/uuid"

	"inventario/internal/domain"
	"inventario/internal/export"
	"inventario/internal/port"
)

// ReportInput is the DTO for creating or updating a report.
type ReportInput struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
}

// ReportService defines the report management contract.
type ReportService interface {
	Create(ctx context.Context, userID, invID uuid.UUID, input ReportInput) (*domain.Report, error)
	GetByID(ctx context.Context, userID, repID uuid.UUID) (*domain.Report, error)
	ListByInventory(ctx context.Context, userID, invID uuid.UUID, offset, limit int) ([]domain.Report, int, error)
	Update(ctx context.Context, userID, repID uuid.UUID, input ReportInput) (*domain.Report, error)
	Delete(ctx context.Context, userID, repID uuid.UUID) error
	ExportCSV(ctx context.Context, userID, repID uuid.UUID) ([]byte, error)
	ExportXLSX(ctx context.Context, userID, repID uuid.UUID) ([]byte, error)
}

// exportBatchSize bounds how many elements a single export page fetches.
const exportBatchSize = 500

type reportService struct {
	repo        port.ReportRepository
	elements    port.ElementRepository
	inventories InventoryService
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	repo port.ReportRepository,
	elements port.ElementRepository,
	inventories InventoryService,
) ReportService {
	return &reportService{repo: repo, elements: elements, inventories: inventories}
}

func (s *reportService) Create(ctx context.Context, userID, invID uuid.UUID, input ReportInput) (*domain.Report, error) {
	if err := s.inventories.CanAccess(ctx, userID, invID); err != nil {
		return nil, err
	}

	rep := &domain.Report{
		InventoryID: invID,
		Title:       input.Title,
		Description: input.Description,
		CreatedBy:   userID,
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *reportService) GetByID(ctx context.Context, userID, repID uuid.UUID) (*domain.Report, error) {
	rep, err := s.repo.GetByID(ctx, repID)
	if err != nil {
		return nil, err
	}
	if err := s.inventories.CanAccess(ctx, userID, rep.InventoryID); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *reportService) ListByInventory(ctx context.Context, userID, invID uuid.UUID, offset, limit int) ([]domain.Report, int, error) {
	if err := s.inventories.CanAccess(ctx, userID, invID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByInventory(ctx, invID, offset, limit)
}

func (s *reportService) Update(ctx context.Context, userID, repID uuid.UUID, input ReportInput) (*domain.Report, error) {
	rep, err := s.repo.GetByID(ctx, repID)
	if err != nil {
		return nil, err
	}
	if err := s.inventories.CanAccess(ctx, userID, rep.InventoryID); err != nil {
		return nil, err
	}

	rep.Title = input.Title
	rep.Description = input.Description
	if err := s.repo.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *reportService) Delete(ctx context.Context, userID, repID uuid.UUID) error {
	rep, err := s.repo.GetByID(ctx, repID)
	if err != nil {
		return err
	}
	if err := s.inventories.CanAccess(ctx, userID, rep.InventoryID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, repID)
}

func (s *reportService) ExportCSV(ctx context.Context, userID, repID uuid.UUID) ([]byte, error) {
	rep, elements, err := s.loadSnapshot(ctx, userID, repID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rep, elements); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *reportService) ExportXLSX(ctx context.Context, userID, repID uuid.UUID) ([]byte, error) {
	rep, elements, err := s.loadSnapshot(ctx, userID, repID)
	if err != nil {
		return nil, err
	}

	buf, err := export.WriteXLSX(rep, elements)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *reportService) loadSnapshot(ctx context.Context, userID, repID uuid.UUID) (*domain.Report, []domain.Element, error) {
	rep, err := s.GetByID(ctx, userID, repID)
	if err != nil {
		return nil, nil, err
	}

	var all []domain.Element
	for offset := 0; ; offset += exportBatchSize {
		page, total, err := s.elements.ListByInventory(ctx, rep.InventoryID, offset, exportBatchSize)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, page...)
		if offset+exportBatchSize >= total || len(page) == 0 {
			break
		}
	}
	return rep, all, nil
}
