package port

import (
	"context"

	"github.com/google/uuid"

	"inventario/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// StateRepository defines the contract for the state catalog.
type StateRepository interface {
	Create(ctx context.Context, state *domain.State) error
	GetByID(ctx context.Context, stateID uuid.UUID) (*domain.State, error)
	List(ctx context.Context, offset, limit int) ([]domain.State, int, error)
	Update(ctx context.Context, state *domain.State) error
	Delete(ctx context.Context, stateID uuid.UUID) error
	CountElements(ctx context.Context, stateID uuid.UUID) (int, error)
}

// InventoryRepository defines the contract for inventory persistence.
type InventoryRepository interface {
	Create(ctx context.Context, inv *domain.Inventory) error
	GetByID(ctx context.Context, invID uuid.UUID) (*domain.Inventory, error)
	ListVisibleTo(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Inventory, int, error)
	Update(ctx context.Context, inv *domain.Inventory) error
	Delete(ctx context.Context, invID uuid.UUID) error
	CountElements(ctx context.Context, invID uuid.UUID) (int, error)
	AddMember(ctx context.Context, member *domain.InventoryMember) error
	IsMember(ctx context.Context, invID, userID uuid.UUID) (bool, error)
}

// LocationRepository defines the contract for location persistence.
type LocationRepository interface {
	Create(ctx context.Context, loc *domain.Location) error
	GetByID(ctx context.Context, locID uuid.UUID) (*domain.Location, error)
	ListByInventory(ctx context.Context, invID uuid.UUID, offset, limit int) ([]domain.Location, int, error)
	Update(ctx context.Context, loc *domain.Location) error
	Delete(ctx context.Context, locID uuid.UUID) error
	CountElements(ctx context.Context, locID uuid.UUID) (int, error)
}

// ElementRepository defines the contract for element persistence.
type ElementRepository interface {
	Create(ctx context.Context, el *domain.Element) error
	GetByID(ctx context.Context, elID uuid.UUID) (*domain.Element, error)
	ListByInventory(ctx context.Context, invID uuid.UUID, offset, limit int) ([]domain.Element, int, error)
	Update(ctx context.Context, el *domain.Element) error
	UpdateImageKey(ctx context.Context, elID uuid.UUID, imageKey string) error
	Delete(ctx context.Context, elID uuid.UUID) error
}

// ReportRepository defines the contract for report persistence.
type ReportRepository interface {
	Create(ctx context.Context, rep *domain.Report) error
	GetByID(ctx context.Context, repID uuid.UUID) (*domain.Report, error)
	ListByInventory(ctx context.Context, invID uuid.UUID, offset, limit int) ([]domain.Report, int, error)
	Update(ctx context.Context, rep *domain.Report) error
	Delete(ctx context.Context, repID uuid.UUID) error
}

// AccessCodeRepository defines the contract for inventory access codes.
type AccessCodeRepository interface {
	Create(ctx context.Context, code *domain.AccessCode) error
	GetByCode(ctx context.Context, code string) (*domain.AccessCode, error)
	DeleteExpired(ctx context.Context) (int, error)
}
