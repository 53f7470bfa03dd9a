package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inventario/internal/config"
	"inventario/internal/domain"
	"inventario/internal/service"
	"inventario/mocks"
)

func newInventoryService() (service.InventoryService, *mocks.MockInventoryRepo, *mocks.MockAccessCodeRepo, *mocks.MockEmailSender) {
	repo := new(mocks.MockInventoryRepo)
	codeRepo := new(mocks.MockAccessCodeRepo)
	email := new(mocks.MockEmailSender)
	cfg := config.ShareConfig{CodeLength: 8, CodeTTL: 48 * time.Hour}
	return service.NewInventoryService(repo, codeRepo, email, cfg), repo, codeRepo, email
}

func TestInventoryService_Update_NotOwner(t *testing.T) {
	svc, repo, _, _ := newInventoryService()

	ownerID := uuid.New()
	otherID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: ownerID}, nil)

	_, err := svc.Update(context.Background(), otherID, invID, service.InventoryInput{Name: "nuevo"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInventoryService_Delete_NotEmpty(t *testing.T) {
	svc, repo, _, _ := newInventoryService()

	ownerID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: ownerID}, nil)
	repo.On("CountElements", mock.Anything, invID).Return(3, nil)

	err := svc.Delete(context.Background(), ownerID, invID)

	assert.ErrorIs(t, err, domain.ErrInventoryNotEmpty)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestInventoryService_Delete_Empty(t *testing.T) {
	svc, repo, _, _ := newInventoryService()

	ownerID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: ownerID}, nil)
	repo.On("CountElements", mock.Anything, invID).Return(0, nil)
	repo.On("Delete", mock.Anything, invID).Return(nil)

	err := svc.Delete(context.Background(), ownerID, invID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestInventoryService_Share_GeneratesAndEmailsCode(t *testing.T) {
	svc, repo, codeRepo, email := newInventoryService()

	ownerID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: ownerID, Name: "Bodega"}, nil)
	codeRepo.On("Create", mock.Anything, mock.MatchedBy(func(ac *domain.AccessCode) bool {
		return ac.InventoryID == invID && ac.CreatedBy == ownerID && len(ac.Code) == 8
	})).Return(nil)
	email.On("SendAccessCodeEmail", mock.Anything, "ana@example.com", "Bodega", mock.AnythingOfType("string"), 48).Return(nil)

	ac, err := svc.Share(context.Background(), ownerID, invID, service.ShareInput{Email: "ana@example.com"})

	require.NoError(t, err)
	assert.Len(t, ac.Code, 8)
	assert.WithinDuration(t, time.Now().UTC().Add(48*time.Hour), ac.ExpiresAt, time.Minute)
	codeRepo.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestInventoryService_Share_NotOwner(t *testing.T) {
	svc, repo, codeRepo, _ := newInventoryService()

	invID := uuid.New()
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: uuid.New()}, nil)

	_, err := svc.Share(context.Background(), uuid.New(), invID, service.ShareInput{Email: "ana@example.com"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	codeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInventoryService_Share_EmailFailureIsNotFatal(t *testing.T) {
	svc, repo, codeRepo, email := newInventoryService()

	ownerID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: ownerID, Name: "Bodega"}, nil)
	codeRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	email.On("SendAccessCodeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	ac, err := svc.Share(context.Background(), ownerID, invID, service.ShareInput{Email: "ana@example.com"})

	require.NoError(t, err)
	assert.NotEmpty(t, ac.Code)
}

func TestInventoryService_Join_Success(t *testing.T) {
	svc, repo, codeRepo, _ := newInventoryService()

	userID := uuid.New()
	invID := uuid.New()
	codeRepo.On("GetByCode", mock.Anything, "ABCD2345").Return(&domain.AccessCode{
		InventoryID: invID,
		Code:        "ABCD2345",
		ExpiresAt:   time.Now().UTC().Add(time.Hour),
	}, nil)
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: uuid.New()}, nil)
	repo.On("AddMember", mock.Anything, mock.MatchedBy(func(m *domain.InventoryMember) bool {
		return m.InventoryID == invID && m.UserID == userID
	})).Return(nil)

	inv, err := svc.Join(context.Background(), userID, service.JoinInput{Code: "ABCD2345"})

	require.NoError(t, err)
	assert.Equal(t, invID, inv.ID)
	repo.AssertExpectations(t)
}

func TestInventoryService_Join_UnknownCode(t *testing.T) {
	svc, _, codeRepo, _ := newInventoryService()

	codeRepo.On("GetByCode", mock.Anything, "NOPE1234").Return(nil, domain.ErrNotFound)

	_, err := svc.Join(context.Background(), uuid.New(), service.JoinInput{Code: "NOPE1234"})

	assert.ErrorIs(t, err, domain.ErrAccessCodeInvalid)
}

func TestInventoryService_Join_ExpiredCode(t *testing.T) {
	svc, repo, codeRepo, _ := newInventoryService()

	codeRepo.On("GetByCode", mock.Anything, "OLDC2345").Return(&domain.AccessCode{
		InventoryID: uuid.New(),
		Code:        "OLDC2345",
		ExpiresAt:   time.Now().UTC().Add(-time.Minute),
	}, nil)

	_, err := svc.Join(context.Background(), uuid.New(), service.JoinInput{Code: "OLDC2345"})

	assert.ErrorIs(t, err, domain.ErrAccessCodeExpired)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
}

func TestInventoryService_Join_OwnerCannotJoin(t *testing.T) {
	svc, repo, codeRepo, _ := newInventoryService()

	ownerID := uuid.New()
	invID := uuid.New()
	codeRepo.On("GetByCode", mock.Anything, "MINE2345").Return(&domain.AccessCode{
		InventoryID: invID,
		Code:        "MINE2345",
		ExpiresAt:   time.Now().UTC().Add(time.Hour),
	}, nil)
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: ownerID}, nil)

	_, err := svc.Join(context.Background(), ownerID, service.JoinInput{Code: "MINE2345"})

	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
}

func TestInventoryService_CanAccess_Member(t *testing.T) {
	svc, repo, _, _ := newInventoryService()

	userID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: uuid.New()}, nil)
	repo.On("IsMember", mock.Anything, invID, userID).Return(true, nil)

	assert.NoError(t, svc.CanAccess(context.Background(), userID, invID))
}

func TestInventoryService_CanAccess_Stranger(t *testing.T) {
	svc, repo, _, _ := newInventoryService()

	userID := uuid.New()
	invID := uuid.New()
	repo.On("GetByID", mock.Anything, invID).Return(&domain.Inventory{ID: invID, OwnerID: uuid.New()}, nil)
	repo.On("IsMember", mock.Anything, invID, userID).Return(false, nil)

	assert.ErrorIs(t, svc.CanAccess(context.Background(), userID, invID), domain.ErrForbidden)
}
