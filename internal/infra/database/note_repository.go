package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type NoteRepository struct {
	DB *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	query := `
		INSERT INTO notes (id, content, contact_id, deal_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		n.ID,
		n.Content,
		n.ContactID,
		n.DealID,
		n.CreatedAt,
	)
	return err
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	query := `
		SELECT id, content, contact_id, deal_id, created_at
		FROM notes
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(
			&n.ID,
			&n.Content,
			&n.ContactID,
			&n.DealID,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

func (r *NoteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count)
	return count, err
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	return err
}
