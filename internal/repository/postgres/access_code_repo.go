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

type accessCodeRepo struct {
	db *sqlx.DB
}

// NewAccessCodeRepo creates a new PostgreSQL-backed AccessCodeRepository.
func NewAccessCodeRepo(db *sqlx.DB) port.AccessCodeRepository {
	return &accessCodeRepo{db: db}
}

func (r *accessCodeRepo) Create(ctx context.Context, code *domain.AccessCode) error {
	code.ID = uuid.New()
	code.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO access_codes (id, inventory_id, code, created_by, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		code.ID, code.InventoryID, code.Code, code.CreatedBy, code.ExpiresAt, code.CreatedAt)
	if err != nil {
		return fmt.Errorf("accessCodeRepo.Create: %w", err)
	}
	return nil
}

func (r *accessCodeRepo) GetByCode(ctx context.Context, code string) (*domain.AccessCode, error) {
	var ac domain.AccessCode
	err := r.db.GetContext(ctx, &ac, "SELECT * FROM access_codes WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("accessCodeRepo.GetByCode: %w", err)
	}
	return &ac, nil
}

func (r *accessCodeRepo) DeleteExpired(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM access_codes WHERE expires_at < NOW()")
	if err != nil {
		return 0, fmt.Errorf("accessCodeRepo.DeleteExpired: %w", err)
	}
	rows, _ := result.RowsAffected()
	return int(rows), nil
}
