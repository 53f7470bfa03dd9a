package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"inventario/internal/config"
	"inventario/internal/domain"
	"inventario/internal/port"
)

// InventoryInput is the DTO for creating or updating an inventory.
type InventoryInput struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// ShareInput is the DTO for generating an access code.
type ShareInput struct {
	Email string `json:"correo" binding:"required,email"`
}

// JoinInput is the DTO for redeeming an access code.
type JoinInput struct {
	Code string `json:"codigo" binding:"required"`
}

// InventoryService defines the inventory management contract.
type InventoryService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input InventoryInput) (*domain.Inventory, error)
	GetByID(ctx context.Context, userID, invID uuid.UUID) (*domain.Inventory, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Inventory, int, error)
	Update(ctx context.Context, userID, invID uuid.UUID, input InventoryInput) (*domain.Inventory, error)
	Delete(ctx context.Context, userID, invID uuid.UUID) error
	Share(ctx context.Context, userID, invID uuid.UUID, input ShareInput) (*domain.AccessCode, error)
	Join(ctx context.Context, userID uuid.UUID, input JoinInput) (*domain.Inventory, error)
	CanAccess(ctx context.Context, userID, invID uuid.UUID) error
}

type inventoryService struct {
	repo     port.InventoryRepository
	codeRepo port.AccessCodeRepository
	email    port.EmailSender
	cfg      config.ShareConfig
}

// NewInventoryService creates a new InventoryService implementation.
func NewInventoryService(
	repo port.InventoryRepository,
	codeRepo port.AccessCodeRepository,
	email port.EmailSender,
	cfg config.ShareConfig,
) InventoryService {
	return &inventoryService{repo: repo, codeRepo: codeRepo, email: email, cfg: cfg}
}

func (s *inventoryService) Create(ctx context.Context, ownerID uuid.UUID, input InventoryInput) (*domain.Inventory, error) {
	inv := &domain.Inventory{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     ownerID,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *inventoryService) GetByID(ctx context.Context, userID, invID uuid.UUID) (*domain.Inventory, error) {
	inv, err := s.repo.GetByID(ctx, invID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(ctx, userID, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *inventoryService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Inventory, int, error) {
	return s.repo.ListVisibleTo(ctx, userID, offset, limit)
}

func (s *inventoryService) Update(ctx context.Context, userID, invID uuid.UUID, input InventoryInput) (*domain.Inventory, error) {
	inv, err := s.repo.GetByID(ctx, invID)
	if err != nil {
		return nil, err
	}
	if inv.OwnerID != userID {
		return nil, domain.ErrForbidden
	}

	inv.Name = input.Name
	inv.Description = input.Description
	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Delete removes an inventory unless it still contains elements.
func (s *inventoryService) Delete(ctx context.Context, userID, invID uuid.UUID) error {
	inv, err := s.repo.GetByID(ctx, invID)
	if err != nil {
		return err
	}
	if inv.OwnerID != userID {
		return domain.ErrForbidden
	}

	count, err := s.repo.CountElements(ctx, invID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrInventoryNotEmpty
	}
	return s.repo.Delete(ctx, invID)
}

// Share generates a time-limited access code for an inventory and emails it
// to the invitee. Only the owner can share.
func (s *inventoryService) Share(ctx context.Context, userID, invID uuid.UUID, input ShareInput) (*domain.AccessCode, error) {
	inv, err := s.repo.GetByID(ctx, invID)
	if err != nil {
		return nil, err
	}
	if inv.OwnerID != userID {
		return nil, domain.ErrForbidden
	}

	code, err := randomCode(s.cfg.CodeLength)
	if err != nil {
		return nil, fmt.Errorf("inventory.Share: %w", err)
	}

	ac := &domain.AccessCode{
		InventoryID: invID,
		Code:        code,
		CreatedBy:   userID,
		ExpiresAt:   time.Now().UTC().Add(s.cfg.CodeTTL),
	}
	if err := s.codeRepo.Create(ctx, ac); err != nil {
		return nil, err
	}

	validHours := int(s.cfg.CodeTTL.Hours())
	if err := s.email.SendAccessCodeEmail(ctx, input.Email, inv.Name, code, validHours); err != nil {
		// The code is already persisted and can be shared out of band.
		log.Printf("inventory.Share: sending access code email: %v", err)
	}
	return ac, nil
}

// Join redeems an access code, adding the user as a member of the inventory.
func (s *inventoryService) Join(ctx context.Context, userID uuid.UUID, input JoinInput) (*domain.Inventory, error) {
	ac, err := s.codeRepo.GetByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAccessCodeInvalid
		}
		return nil, err
	}
	if time.Now().UTC().After(ac.ExpiresAt) {
		return nil, domain.ErrAccessCodeExpired
	}

	inv, err := s.repo.GetByID(ctx, ac.InventoryID)
	if err != nil {
		return nil, err
	}
	if inv.OwnerID == userID {
		return nil, domain.ErrAlreadyMember
	}

	member := &domain.InventoryMember{InventoryID: inv.ID, UserID: userID}
	if err := s.repo.AddMember(ctx, member); err != nil {
		return nil, err
	}
	return inv, nil
}

// CanAccess reports whether a user may read an inventory's contents.
func (s *inventoryService) CanAccess(ctx context.Context, userID, invID uuid.UUID) error {
	inv, err := s.repo.GetByID(ctx, invID)
	if err != nil {
		return err
	}
	return s.checkAccess(ctx, userID, inv)
}

func (s *inventoryService) checkAccess(ctx context.Context, userID uuid.UUID, inv *domain.Inventory) error {
	if inv.OwnerID == userID {
		return nil
	}
	member, err := s.repo.IsMember(ctx, inv.ID, userID)
	if err != nil {
		return err
	}
	if !member {
		return domain.ErrForbidden
	}
	return nil
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// randomCode returns an unambiguous uppercase code of the given length.
func randomCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
