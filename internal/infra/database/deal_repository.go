package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type DealRepository struct {
	DB *sql.DB
}

func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{DB: db}
}

func (r *DealRepository) Create(ctx context.Context, d *entity.Deal) error {
	query := `
		INSERT INTO deals (id, title, value, stage, contact_id, expected_close_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		d.ID,
		d.Title,
		d.Value,
		d.Stage,
		d.ContactID,
		d.ExpectedCloseDate,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DealRepository) FindAll(ctx context.Context) ([]*entity.Deal, error) {
	query := `
		SELECT id, title, value, stage, contact_id, expected_close_date, created_at, updated_at
		FROM deals
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Deal
	for rows.Next() {
		var d entity.Deal
		if err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.Value,
			&d.Stage,
			&d.ContactID,
			&d.ExpectedCloseDate,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *DealRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM deals`).Scan(&count)
	return count, err
}

func (r *DealRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM deals WHERE id = $1`, id)
	return err
}
