package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"inventario/internal/config"
	"inventario/internal/domain"
	"inventario/internal/port"
)

const dateLayout = "2006-01-02"

// ElementInput is the DTO for creating or updating an element. The date field
// arrives pre-validated as yyyy-MM-dd by the request filter.
type ElementInput struct {
	Name        string     `json:"nombre"`
	Description string     `json:"descripcion"`
	Serial      string     `json:"serial"`
	Quantity    int        `json:"cantidad"`
	Available   *bool      `json:"disponible"`
	AcquiredOn  string     `json:"fechaAdquisicion"`
	LocationID  *uuid.UUID `json:"idUbicacion"`
	StateID     *uuid.UUID `json:"idEstado"`
}

// UploadImageInput carries an element photo upload.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ElementService defines the element management contract.
type ElementService interface {
	Create(ctx context.Context, userID, invID uuid.UUID, input ElementInput) (*domain.Element, error)
	GetByID(ctx context.Context, userID, elID uuid.UUID) (*domain.Element, error)
	ListByInventory(ctx context.Context, userID, invID uuid.UUID, offset, limit int) ([]domain.Element, int, error)
	Update(ctx context.Context, userID, elID uuid.UUID, input ElementInput) (*domain.Element, error)
	Delete(ctx context.Context, userID, elID uuid.UUID) error
	UploadImage(ctx context.Context, userID, elID uuid.UUID, input UploadImageInput) (*domain.Element, error)
	ImageURL(ctx context.Context, userID, elID uuid.UUID) (string, error)
}

type elementService struct {
	repo        port.ElementRepository
	inventories InventoryService
	storage     port.ObjectStorage
	cfg         *config.S3Config
}

// NewElementService creates a new ElementService implementation.
func NewElementService(
	repo port.ElementRepository,
	inventories InventoryService,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) ElementService {
	return &elementService{repo: repo, inventories: inventories, storage: storage, cfg: cfg}
}

func (s *elementService) Create(ctx context.Context, userID, invID uuid.UUID, input ElementInput) (*domain.Element, error) {
	if err := s.inventories.CanAccess(ctx, userID, invID); err != nil {
		return nil, err
	}

	el := &domain.Element{
		InventoryID: invID,
		LocationID:  input.LocationID,
		StateID:     input.StateID,
		Name:        input.Name,
		Description: input.Description,
		Serial:      input.Serial,
		Quantity:    input.Quantity,
		Available:   true,
	}
	if input.Available != nil {
		el.Available = *input.Available
	}
	if input.AcquiredOn != "" {
		t, err := time.Parse(dateLayout, input.AcquiredOn)
		if err != nil {
			return nil, fmt.Errorf("element.Create parsing fechaAdquisicion: %w", err)
		}
		el.AcquiredOn = &t
	}

	if err := s.repo.Create(ctx, el); err != nil {
		return nil, err
	}
	return el, nil
}

func (s *elementService) GetByID(ctx context.Context, userID, elID uuid.UUID) (*domain.Element, error) {
	el, err := s.repo.GetByID(ctx, elID)
	if err != nil {
		return nil, err
	}
	if err := s.inventories.CanAccess(ctx, userID, el.InventoryID); err != nil {
		return nil, err
	}
	return el, nil
}

func (s *elementService) ListByInventory(ctx context.Context, userID, invID uuid.UUID, offset, limit int) ([]domain.Element, int, error) {
	if err := s.inventories.CanAccess(ctx, userID, invID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByInventory(ctx, invID, offset, limit)
}

func (s *elementService) Update(ctx context.Context, userID, elID uuid.UUID, input ElementInput) (*domain.Element, error) {
	el, err := s.repo.GetByID(ctx, elID)
	if err != nil {
		return nil, err
	}
	if err := s.inventories.CanAccess(ctx, userID, el.InventoryID); err != nil {
		return nil, err
	}

	el.LocationID = input.LocationID
	el.StateID = input.StateID
	el.Name = input.Name
	el.Description = input.Description
	el.Serial = input.Serial
	el.Quantity = input.Quantity
	if input.Available != nil {
		el.Available = *input.Available
	}
	if input.AcquiredOn != "" {
		t, err := time.Parse(dateLayout, input.AcquiredOn)
		if err != nil {
			return nil, fmt.Errorf("element.Update parsing fechaAdquisicion: %w", err)
		}
		el.AcquiredOn = &t
	}

	if err := s.repo.Update(ctx, el); err != nil {
		return nil, err
	}
	return el, nil
}

func (s *elementService) Delete(ctx context.Context, userID, elID uuid.UUID) error {
	el, err := s.repo.GetByID(ctx, elID)
	if err != nil {
		return err
	}
	if err := s.inventories.CanAccess(ctx, userID, el.InventoryID); err != nil {
		return err
	}

	if el.ImageKey != "" {
		// Best effort; a dangling object is cleaned up by bucket lifecycle rules.
		_ = s.storage.Delete(ctx, s.cfg.Bucket, el.ImageKey)
	}
	return s.repo.Delete(ctx, elID)
}

// UploadImage stores an element photo in object storage and records its key.
func (s *elementService) UploadImage(ctx context.Context, userID, elID uuid.UUID, input UploadImageInput) (*domain.Element, error) {
	el, err := s.repo.GetByID(ctx, elID)
	if err != nil {
		return nil, err
	}
	if err := s.inventories.CanAccess(ctx, userID, el.InventoryID); err != nil {
		return nil, err
	}

	if !allowedImageTypes[input.ContentType] {
		return nil, domain.ErrUnsupportedImage
	}
	if input.Size > s.cfg.MaxImageSizeMB*1024*1024 {
		return nil, domain.ErrImageTooLarge
	}

	key := fmt.Sprintf("elements/%s/%s-%s", el.InventoryID, el.ID, input.FileName)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: input.ContentType,
		Size:        input.Size,
	})
	if err != nil {
		return nil, domain.ErrUploadFailed
	}

	if err := s.repo.UpdateImageKey(ctx, elID, key); err != nil {
		return nil, err
	}
	el.ImageKey = key
	return el, nil
}

// ImageURL returns a presigned download URL for the element's photo.
func (s *elementService) ImageURL(ctx context.Context, userID, elID uuid.UUID) (string, error) {
	el, err := s.GetByID(ctx, userID, elID)
	if err != nil {
		return "", err
	}
	if el.ImageKey == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, el.ImageKey, s.cfg.PresignExpiry)
}
