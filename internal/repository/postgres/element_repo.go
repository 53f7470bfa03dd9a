package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"inventario/internal/domain"
	"inventario/internal/port"
)

type elementRepo struct {
	db *sqlx.DB
}

// NewElementRepo creates a new PostgreSQL-backed ElementRepository.
func NewElementRepo(db *sqlx.DB) port.ElementRepository {
	return &elementRepo{db: db}
}

func (r *elementRepo) Create(ctx context.Context, el *domain.Element) error {
	el.ID = uuid.New()
	now := time.Now().UTC()
	el.CreatedAt = now
	el.UpdatedAt = now

	query := `INSERT INTO elements (id, inventory_id, location_id, state_id, name, description,
		serial, quantity, available, acquired_on, image_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		el.ID, el.InventoryID, el.LocationID, el.StateID, el.Name, el.Description,
		el.Serial, el.Quantity, el.Available, el.AcquiredOn, el.ImageKey,
		el.CreatedAt, el.UpdatedAt)
	if err != nil {
		return fmt.Errorf("elementRepo.Create: %w", err)
	}
	return nil
}

func (r *elementRepo) GetByID(ctx context.Context, elID uuid.UUID) (*domain.Element, error) {
	var el domain.Element
	err := r.db.GetContext(ctx, &el, "SELECT * FROM elements WHERE id = $1", elID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("elementRepo.GetByID: %w", err)
	}
	return &el, nil
}

func (r *elementRepo) ListByInventory(ctx context.Context, invID uuid.UUID, offset, limit int) ([]domain.Element, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM elements WHERE inventory_id = $1", invID)
	if err != nil {
		return nil, 0, fmt.Errorf("elementRepo.ListByInventory count: %w", err)
	}

	var els []domain.Element
	err = r.db.SelectContext(ctx, &els,
		"SELECT * FROM elements WHERE inventory_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		invID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("elementRepo.ListByInventory: %w", err)
	}
	return els, total, nil
}

func (r *elementRepo) Update(ctx context.Context, el *domain.Element) error {
	el.UpdatedAt = time.Now().UTC()
	query := `UPDATE elements SET location_id = $1, state_id = $2, name = $3, description = $4,
		serial = $5, quantity = $6, available = $7, acquired_on = $8, updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		el.LocationID, el.StateID, el.Name, el.Description,
		el.Serial, el.Quantity, el.Available, el.AcquiredOn, el.UpdatedAt, el.ID)
	if err != nil {
		return fmt.Errorf("elementRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *elementRepo) UpdateImageKey(ctx context.Context, elID uuid.UUID, imageKey string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE elements SET image_key = $1, updated_at = NOW() WHERE id = $2",
		imageKey, elID)
	if err != nil {
		return fmt.Errorf("elementRepo.UpdateImageKey: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *elementRepo) Delete(ctx context.Context, elID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM elements WHERE id = $1", elID)
	if err != nil {
		return fmt.Errorf("elementRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
