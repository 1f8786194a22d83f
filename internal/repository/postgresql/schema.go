package postgresql

import (
	"context"
	"fmt"

	"github.com/hrms-lite/hrms-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id          BIGSERIAL PRIMARY KEY,
		employee_id TEXT NOT NULL UNIQUE,
		full_name   TEXT NOT NULL,
		email       TEXT NOT NULL UNIQUE,
		department  TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id          BIGSERIAL PRIMARY KEY,
		employee_id BIGINT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		status      TEXT NOT NULL CHECK (status IN ('Present', 'Absent')),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendances_date_status ON attendances (date, status)`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
}
