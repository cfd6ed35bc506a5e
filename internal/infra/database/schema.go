package database

import (
	"context"
	"database/sql"
	"fmt"
)

// The schema used to live only in frontend type declarations, which made it
// impossible to catch drift before a query blew up at runtime. EnsureSchema
// runs at startup so the process refuses to boot against a broken database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		position TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS deals (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		value NUMERIC NOT NULL DEFAULT 0,
		stage TEXT NOT NULL DEFAULT 'lead',
		contact_id TEXT NOT NULL DEFAULT '',
		expected_close_date TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS call_logs (
		id UUID PRIMARY KEY,
		contact_id TEXT NOT NULL,
		call_sid TEXT NOT NULL,
		call_type TEXT NOT NULL,
		status TEXT NOT NULL,
		duration INTEGER NOT NULL DEFAULT 0,
		recording_url TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_call_logs_call_sid ON call_logs (call_sid)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		contact_id TEXT NOT NULL DEFAULT '',
		deal_id TEXT NOT NULL DEFAULT '',
		due_date TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id UUID PRIMARY KEY,
		content TEXT NOT NULL,
		contact_id TEXT NOT NULL DEFAULT '',
		deal_id TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema setup failed: %w", err)
		}
	}
	return nil
}
