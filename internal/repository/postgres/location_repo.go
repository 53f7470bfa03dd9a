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

type locationRepo struct {
	db *sqlx.DB
}

// NewLocationRepo creates a new PostgreSQL-backed LocationRepository.
func NewLocationRepo(db *sqlx.DB) port.LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, loc *domain.Location) error {
	loc.ID = uuid.New()
	now := time.Now().UTC()
	loc.CreatedAt = now
	loc.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (id, inventory_id, name, description, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		loc.ID, loc.InventoryID, loc.Name, loc.Description, loc.Capacity, loc.CreatedAt, loc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("locationRepo.Create: %w", err)
	}
	return nil
}

func (r *locationRepo) GetByID(ctx context.Context, locID uuid.UUID) (*domain.Location, error) {
	var loc domain.Location
	err := r.db.GetContext(ctx, &loc, "SELECT * FROM locations WHERE id = $1", locID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("locationRepo.GetByID: %w", err)
	}
	return &loc, nil
}

func (r *locationRepo) ListByInventory(ctx context.Context, invID uuid.UUID, offset, limit int) ([]domain.Location, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM locations WHERE inventory_id = $1", invID)
	if err != nil {
		return nil, 0, fmt.Errorf("locationRepo.ListByInventory count: %w", err)
	}

	var locs []domain.Location
	err = r.db.SelectContext(ctx, &locs,
		"SELECT * FROM locations WHERE inventory_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3",
		invID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("locationRepo.ListByInventory: %w", err)
	}
	return locs, total, nil
}

func (r *locationRepo) Update(ctx context.Context, loc *domain.Location) error {
	loc.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		"UPDATE locations SET name = $1, description = $2, capacity = $3, updated_at = $4 WHERE id = $5",
		loc.Name, loc.Description, loc.Capacity, loc.UpdatedAt, loc.ID)
	if err != nil {
		return fmt.Errorf("locationRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *locationRepo) Delete(ctx context.Context, locID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM locations WHERE id = $1", locID)
	if err != nil {
		return fmt.Errorf("locationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *locationRepo) CountElements(ctx context.Context, locID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM elements WHERE location_id = $1", locID)
	if err != nil {
		return 0, fmt.Errorf("locationRepo.CountElements: %w", err)
	}
	return count, nil
}
