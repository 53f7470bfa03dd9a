package service

import (
	"context"

	"github.com/google/uuid"

	"inventario/internal/domain"
	"inventario/internal/port"
)

// StateInput is the DTO for creating or updating a state.
type StateInput struct {
	Name string `json:"nombre"`
}

// StateService defines the state catalog contract.
type StateService interface {
	Create(ctx context.Context, input StateInput) (*domain.State, error)
	GetByID(ctx context.Context, stateID uuid.UUID) (*domain.State, error)
	List(ctx context.Context, offset, limit int) ([]domain.State, int, error)
	Update(ctx context.Context, stateID uuid.UUID, input StateInput) (*domain.State, error)
	Delete(ctx context.Context, stateID uuid.UUID) error
}

type stateService struct {
	repo port.StateRepository
}

// NewStateService creates a new StateService implementation.
func NewStateService(repo port.StateRepository) StateService {
	return &stateService{repo: repo}
}

func (s *stateService) Create(ctx context.Context, input StateInput) (*domain.State, error) {
	state := &domain.State{Name: input.Name}
	if err := s.repo.Create(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *stateService) GetByID(ctx context.Context, stateID uuid.UUID) (*domain.State, error) {
	return s.repo.GetByID(ctx, stateID)
}

func (s *stateService) List(ctx context.Context, offset, limit int) ([]domain.State, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *stateService) Update(ctx context.Context, stateID uuid.UUID, input StateInput) (*domain.State, error) {
	state, err := s.repo.GetByID(ctx, stateID)
	if err != nil {
		return nil, err
	}
	state.Name = input.Name
	if err := s.repo.Update(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Delete removes a state unless elements still reference it.
func (s *stateService) Delete(ctx context.Context, stateID uuid.UUID) error {
	count, err := s.repo.CountElements(ctx, stateID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrStateInUse
	}
	return s.repo.Delete(ctx, stateID)
}
