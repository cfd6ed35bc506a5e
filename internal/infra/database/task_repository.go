package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type TaskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, contact_id, deal_id, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.ContactID,
		t.DealID,
		t.DueDate,
		t.Status,
		t.CreatedAt,
	)
	return err
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]*entity.Task, error) {
	query := `
		SELECT id, title, description, contact_id, deal_id, due_date, status, created_at
		FROM tasks
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.ContactID,
			&t.DealID,
			&t.DueDate,
			&t.Status,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *TaskRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
	return count, err
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE tasks SET status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}
