package service

import (
	"context"

	"github.com/google/uuid"

	"inventario/internal/domain"
	"inventario/internal/port"
)

// LocationInput is the DTO for creating or updating a location.
type LocationInput struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Capacity    int    `json:"capacidad"`
}

// LocationService defines the location management contract.
type LocationService interface {
	Create(ctx context.Context, userID, invID uuid.UUID, input LocationInput) (*domain.Location, error)
	GetByID(ctx context.Context, userID, locID uuid.UUID) (*domain.Location, error)
	ListByInventory(ctx context.Context, userID, invID uuid.UUID, offset, limit int) ([]domain.Location, int, error)
	Update(ctx context.Context, userID, locID uuid.UUID, input LocationInput) (*domain.Location, error)
	Delete(ctx context.Context, userID, locID uuid.UUID) error
}

type locationService struct {
	repo        port.LocationRepository
	inventories InventoryService
}

// NewLocationService creates a new LocationService implementation.
func NewLocationService(repo port.LocationRepository, inventories InventoryService) LocationService {
	return &locationService{repo: repo, inventories: inventories}
}

func (s *locationService) Create(ctx context.Context, userID, invID uuid.UUID, input LocationInput) (*domain.Location, error) {
	if err := s.inventories.CanAccess(ctx, userID, invID); err != nil {
		return nil, err
	}

	loc := &domain.Location{
		InventoryID: invID,
		Name:        input.Name,
		Description: input.Description,
		Capacity:    input.Capacity,
	}
	if err := s.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *locationService) GetByID(ctx context.Context, userID, locID uuid.UUID) (*domain.Location, error) {
	loc, err := s.repo.GetByID(ctx, locID)
	if err != nil {
		return nil, err
	}
	if err := s.inventories.CanAccess(ctx, userID, loc.InventoryID); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *locationService) ListByInventory(ctx context.Context, userID, invID uuid.UUID, offset, limit int) ([]domain.Location, int, error) {
	if err := s.inventories.CanAccess(ctx, userID, invID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByInventory(ctx, invID, offset, limit)
}

func (s *locationService) Update(ctx context.Context, userID, locID uuid.UUID, input LocationInput) (*domain.Location, error) {
	loc, err := s.repo.GetByID(ctx, locID)
	if err != nil {
		return nil, err
	}
	if err := s.inventories.CanAccess(ctx, userID, loc.InventoryID); err != nil {
		return nil, err
	}

	loc.Name = input.Name
	loc.Description = input.Description
	loc.Capacity = input.Capacity
	if err := s.repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Delete removes a location unless elements are still assigned to it.
func (s *locationService) Delete(ctx context.Context, userID, locID uuid.UUID) error {
	loc, err := s.repo.GetByID(ctx, locID)
	if err != nil {
		return err
	}
	if err := s.inventories.CanAccess(ctx, userID, loc.InventoryID); err != nil {
		return err
	}

	count, err := s.repo.CountElements(ctx, locID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrLocationNotEmpty
	}
	return s.repo.Delete(ctx, locID)
}
