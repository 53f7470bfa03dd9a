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

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, rep *domain.Report) error {
	rep.ID = uuid.New()
	now := time.Now().UTC()
	rep.CreatedAt = now
	rep.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (id, inventory_id, title, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rep.ID, rep.InventoryID, rep.Title, rep.Description, rep.CreatedBy, rep.CreatedAt, rep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("reportRepo.Create: %w", err)
	}
	return nil
}

func (r *reportRepo) GetByID(ctx context.Context, repID uuid.UUID) (*domain.Report, error) {
	var rep domain.Report
	err := r.db.GetContext(ctx, &rep, "SELECT * FROM reports WHERE id = $1", repID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reportRepo.GetByID: %w", err)
	}
	return &rep, nil
}

func (r *reportRepo) ListByInventory(ctx context.Context, invID uuid.UUID, offset, limit int) ([]domain.Report, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM reports WHERE inventory_id = $1", invID)
	if err != nil {
		return nil, 0, fmt.Errorf("reportRepo.ListByInventory count: %w", err)
	}

	var reps []domain.Report
	err = r.db.SelectContext(ctx, &reps,
		"SELECT * FROM reports WHERE inventory_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		invID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("reportRepo.ListByInventory: %w", err)
	}
	return reps, total, nil
}

func (r *reportRepo) Update(ctx context.Context, rep *domain.Report) error {
	rep.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		"UPDATE reports SET title = $1, description = $2, updated_at = $3 WHERE id = $4",
		rep.Title, rep.Description, rep.UpdatedAt, rep.ID)
	if err != nil {
		return fmt.Errorf("reportRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reportRepo) Delete(ctx context.Context, repID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reports WHERE id = $1", repID)
	if err != nil {
		return fmt.Errorf("reportRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
