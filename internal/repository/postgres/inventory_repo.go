package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"inventario/internal/domain"
	"inventario/internal/port"
)

type inventoryRepo struct {
	db *sqlx.DB
}

// NewInventoryRepo creates a new PostgreSQL-backed InventoryRepository.
func NewInventoryRepo(db *sqlx.DB) port.InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, inv *domain.Inventory) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inventories (id, name, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		inv.ID, inv.Name, inv.Description, inv.OwnerID, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inventoryRepo.Create: %w", err)
	}
	return nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, invID uuid.UUID) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM inventories WHERE id = $1", invID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("inventoryRepo.GetByID: %w", err)
	}
	return &inv, nil
}

// ListVisibleTo returns inventories the user owns or joined via access code.
func (r *inventoryRepo) ListVisibleTo(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Inventory, int, error) {
	const visible = `FROM inventories i
		WHERE i.owner_id = $1
		   OR EXISTS (SELECT 1 FROM inventory_members m WHERE m.inventory_id = i.id AND m.user_id = $1)`

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+visible, userID); err != nil {
		return nil, 0, fmt.Errorf("inventoryRepo.ListVisibleTo count: %w", err)
	}

	var invs []domain.Inventory
	err := r.db.SelectContext(ctx, &invs,
		"SELECT i.* "+visible+" ORDER BY i.created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("inventoryRepo.ListVisibleTo: %w", err)
	}
	return invs, total, nil
}

func (r *inventoryRepo) Update(ctx context.Context, inv *domain.Inventory) error {
	inv.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		"UPDATE inventories SET name = $1, description = $2, updated_at = $3 WHERE id = $4",
		inv.Name, inv.Description, inv.UpdatedAt, inv.ID)
	if err != nil {
		return fmt.Errorf("inventoryRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *inventoryRepo) Delete(ctx context.Context, invID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM inventories WHERE id = $1", invID)
	if err != nil {
		return fmt.Errorf("inventoryRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *inventoryRepo) CountElements(ctx context.Context, invID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM elements WHERE inventory_id = $1", invID)
	if err != nil {
		return 0, fmt.Errorf("inventoryRepo.CountElements: %w", err)
	}
	return count, nil
}

func (r *inventoryRepo) AddMember(ctx context.Context, member *domain.InventoryMember) error {
	member.JoinedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO inventory_members (inventory_id, user_id, joined_at) VALUES ($1, $2, $3)",
		member.InventoryID, member.UserID, member.JoinedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("inventoryRepo.AddMember: %w", err)
	}
	return nil
}

func (r *inventoryRepo) IsMember(ctx context.Context, invID, userID uuid.UUID) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM inventory_members WHERE inventory_id = $1 AND user_id = $2",
		invID, userID)
	if err != nil {
		return false, fmt.Errorf("inventoryRepo.IsMember: %w", err)
	}
	return count > 0, nil
}
