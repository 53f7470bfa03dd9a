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

type stateRepo struct {
	db *sqlx.DB
}

// NewStateRepo creates a new PostgreSQL-backed StateRepository.
func NewStateRepo(db *sqlx.DB) port.StateRepository {
	return &stateRepo{db: db}
}

func (r *stateRepo) Create(ctx context.Context, state *domain.State) error {
	state.ID = uuid.New()
	now := time.Now().UTC()
	state.CreatedAt = now
	state.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO states (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)",
		state.ID, state.Name, state.CreatedAt, state.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateState
		}
		return fmt.Errorf("stateRepo.Create: %w", err)
	}
	return nil
}

func (r *stateRepo) GetByID(ctx context.Context, stateID uuid.UUID) (*domain.State, error) {
	var state domain.State
	err := r.db.GetContext(ctx, &state, "SELECT * FROM states WHERE id = $1", stateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stateRepo.GetByID: %w", err)
	}
	return &state, nil
}

func (r *stateRepo) List(ctx context.Context, offset, limit int) ([]domain.State, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM states"); err != nil {
		return nil, 0, fmt.Errorf("stateRepo.List count: %w", err)
	}

	var states []domain.State
	err := r.db.SelectContext(ctx, &states,
		"SELECT * FROM states ORDER BY name ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("stateRepo.List: %w", err)
	}
	return states, total, nil
}

func (r *stateRepo) Update(ctx context.Context, state *domain.State) error {
	state.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		"UPDATE states SET name = $1, updated_at = $2 WHERE id = $3",
		state.Name, state.UpdatedAt, state.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateState
		}
		return fmt.Errorf("stateRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *stateRepo) Delete(ctx context.Context, stateID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM states WHERE id = $1", stateID)
	if err != nil {
		return fmt.Errorf("stateRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *stateRepo) CountElements(ctx context.Context, stateID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM elements WHERE state_id = $1", stateID)
	if err != nil {
		return 0, fmt.Errorf("stateRepo.CountElements: %w", err)
	}
	return count, nil
}
