package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type CallLogRepository struct {
	DB *sql.DB
}

func NewCallLogRepository(db *sql.DB) *CallLogRepository {
	return &CallLogRepository{DB: db}
}

func (r *CallLogRepository) Create(ctx context.Context, c *entity.CallLog) error {
	query := `
		INSERT INTO call_logs (id, contact_id, call_sid, call_type, status, duration, recording_url, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.ContactID,
		c.CallSid,
		c.CallType,
		c.Status,
		c.Duration,
		c.RecordingURL,
		c.Notes,
		c.CreatedAt,
	)

	if err != nil {
		log.Printf("call_logs insert failed: %v", err)
		return err
	}

	return nil
}

func (r *CallLogRepository) FindAll(ctx context.Context) ([]*entity.CallLog, error) {
	query := `
		SELECT id, contact_id, call_sid, call_type, status, duration, recording_url, notes, created_at
		FROM call_logs
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.CallLog
	for rows.Next() {
		var c entity.CallLog
		if err := rows.Scan(
			&c.ID,
			&c.ContactID,
			&c.CallSid,
			&c.CallType,
			&c.Status,
			&c.Duration,
			&c.RecordingURL,
			&c.Notes,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CallLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM call_logs`).Scan(&count)
	return count, err
}

// UpdateCallDetails is only called by the call-event worker once the provider
// reports a final status. The initiate flow never touches a row after insert.
func (r *CallLogRepository) UpdateCallDetails(ctx context.Context, callSid, status string, duration int, recordingURL string) error {
	query := `
		UPDATE call_logs
		SET status = $2,
		    duration = $3,
		    recording_url = $4
		WHERE call_sid = $1
	`

	_, err := r.DB.ExecContext(ctx, query, callSid, status, duration, recordingURL)
	return err
}
