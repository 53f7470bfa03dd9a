package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can authenticate and own inventories.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// State is a catalog entry describing the condition of an element
// (e.g. "Activo", "Inactivo", "En reparación").
type State struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Inventory groups elements under a single owner.
type Inventory struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	OwnerID     uuid.UUID `db:"owner_id" json:"owner_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Location is a physical place inside an inventory where elements live.
type Location struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InventoryID uuid.UUID `db:"inventory_id" json:"inventory_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Capacity    int       `db:"capacity" json:"capacity"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Element is a tracked asset belonging to an inventory.
type Element struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	InventoryID uuid.UUID  `db:"inventory_id" json:"inventory_id"`
	LocationID  *uuid.UUID `db:"location_id" json:"location_id"`
	StateID     *uuid.UUID `db:"state_id" json:"state_id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Serial      string     `db:"serial" json:"serial"`
	Quantity    int        `db:"quantity" json:"quantity"`
	Available   bool       `db:"available" json:"available"`
	AcquiredOn  *time.Time `db:"acquired_on" json:"acquired_on"`
	ImageKey    string     `db:"image_key" json:"image_key,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Report is a user-authored report over an inventory (loss, damage, audit).
type Report struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InventoryID uuid.UUID `db:"inventory_id" json:"inventory_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// AccessCode grants time-limited membership to an inventory.
type AccessCode struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InventoryID uuid.UUID `db:"inventory_id" json:"inventory_id"`
	Code        string    `db:"code" json:"code"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	ExpiresAt   time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// InventoryMember links a user to an inventory they were granted access to.
type InventoryMember struct {
	InventoryID uuid.UUID `db:"inventory_id" json:"inventory_id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	JoinedAt    time.Time `db:"joined_at" json:"joined_at"`
}
