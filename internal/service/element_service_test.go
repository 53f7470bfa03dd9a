package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inventario/internal/config"
	"inventario/internal/domain"
	"inventario/internal/port"
	"inventario/internal/service"
	"inventario/mocks"
)

func newElementService() (service.ElementService, *mocks.MockElementRepo, *mocks.MockInventoryService, *mocks.MockObjectStorage) {
	repo := new(mocks.MockElementRepo)
	inventories := new(mocks.MockInventoryService)
	storage := new(mocks.MockObjectStorage)
	cfg := &config.S3Config{Bucket: "inventario-test", MaxImageSizeMB: 5, PresignExpiry: 900}
	return service.NewElementService(repo, inventories, storage, cfg), repo, inventories, storage
}

func TestElementService_Create_ParsesAcquisitionDate(t *testing.T) {
	svc, repo, inventories, _ := newElementService()

	userID := uuid.New()
	invID := uuid.New()
	inventories.On("CanAccess", mock.Anything, userID, invID).Return(nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(el *domain.Element) bool {
		return el.InventoryID == invID && el.AcquiredOn != nil
	})).Return(nil)

	el, err := svc.Create(context.Background(), userID, invID, service.ElementInput{
		Name:       "Taladro",
		Quantity:   2,
		AcquiredOn: "2024-02-29",
	})

	require.NoError(t, err)
	require.NotNil(t, el.AcquiredOn)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *el.AcquiredOn)
	assert.True(t, el.Available)
}

func TestElementService_Create_NoAccess(t *testing.T) {
	svc, repo, inventories, _ := newElementService()

	userID := uuid.New()
	invID := uuid.New()
	inventories.On("CanAccess", mock.Anything, userID, invID).Return(domain.ErrForbidden)

	_, err := svc.Create(context.Background(), userID, invID, service.ElementInput{Name: "Taladro"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestElementService_UploadImage_RejectsUnsupportedType(t *testing.T) {
	svc, repo, inventories, storage := newElementService()

	userID := uuid.New()
	elID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, elID).Return(&domain.Element{ID: elID, InventoryID: invID}, nil)
	inventories.On("CanAccess", mock.Anything, userID, invID).Return(nil)

	_, err := svc.UploadImage(context.Background(), userID, elID, service.UploadImageInput{
		FileName:    "manual.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Body:        strings.NewReader("pdf"),
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedImage)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestElementService_UploadImage_RejectsOversized(t *testing.T) {
	svc, repo, inventories, _ := newElementService()

	userID := uuid.New()
	elID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, elID).Return(&domain.Element{ID: elID, InventoryID: invID}, nil)
	inventories.On("CanAccess", mock.Anything, userID, invID).Return(nil)

	_, err := svc.UploadImage(context.Background(), userID, elID, service.UploadImageInput{
		FileName:    "foto.jpg",
		ContentType: "image/jpeg",
		Size:        6 * 1024 * 1024,
		Body:        strings.NewReader("big"),
	})

	assert.ErrorIs(t, err, domain.ErrImageTooLarge)
}

func TestElementService_UploadImage_StoresAndRecordsKey(t *testing.T) {
	svc, repo, inventories, storage := newElementService()

	userID := uuid.New()
	elID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, elID).Return(&domain.Element{ID: elID, InventoryID: invID}, nil)
	inventories.On("CanAccess", mock.Anything, userID, invID).Return(nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "inventario-test" && strings.HasPrefix(in.Key, "elements/")
	})).Return(&port.UploadOutput{Location: "https://example"}, nil)
	repo.On("UpdateImageKey", mock.Anything, elID, mock.AnythingOfType("string")).Return(nil)

	el, err := svc.UploadImage(context.Background(), userID, elID, service.UploadImageInput{
		FileName:    "foto.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Body:        strings.NewReader("jpg"),
	})

	require.NoError(t, err)
	assert.Contains(t, el.ImageKey, "foto.jpg")
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestElementService_ImageURL_NoImage(t *testing.T) {
	svc, repo, inventories, _ := newElementService()

	userID := uuid.New()
	elID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, elID).Return(&domain.Element{ID: elID, InventoryID: invID}, nil)
	inventories.On("CanAccess", mock.Anything, userID, invID).Return(nil)

	_, err := svc.ImageURL(context.Background(), userID, elID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStateService_Delete_InUse(t *testing.T) {
	repo := new(mocks.MockStateRepo)
	svc := service.NewStateService(repo)

	stateID := uuid.New()
	repo.On("CountElements", mock.Anything, stateID).Return(2, nil)

	err := svc.Delete(context.Background(), stateID)

	assert.ErrorIs(t, err, domain.ErrStateInUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestStateService_Delete_Unused(t *testing.T) {
	repo := new(mocks.MockStateRepo)
	svc := service.NewStateService(repo)

	stateID := uuid.New()
	repo.On("CountElements", mock.Anything, stateID).Return(0, nil)
	repo.On("Delete", mock.Anything, stateID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), stateID))
	repo.AssertExpectations(t)
}
